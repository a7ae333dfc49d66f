package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/saransh1220/gallery-backend/internal/modules/gallery/application"
	galleryHttp "github.com/saransh1220/gallery-backend/internal/modules/gallery/interfaces/http"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type serviceBuilder func(ctx context.Context) (application.GalleryService, error)

type cli struct {
	build  serviceBuilder
	out    io.Writer
	output string
}

func newRootCmd(build serviceBuilder, out io.Writer) *cobra.Command {
	c := &cli{build: build, out: out}

	root := &cobra.Command{
		Use:   "galleryctl",
		Short: "Inspect the media gallery from the command line",
		Long: `galleryctl queries the configured media provider the same way the
gallery API does, using the same environment variables (and .env file).

Examples:
  galleryctl list
  galleryctl folder art --output yaml
  galleryctl folders`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.output != "json" && c.output != "yaml" {
				return fmt.Errorf("unsupported output format %q (use json or yaml)", c.output)
			}
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&c.output, "output", "o", "json", "Output format (json, yaml)")

	root.AddCommand(c.listCmd(), c.folderCmd(), c.foldersCmd())
	return root
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every asset grouped by folder",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			gallery, err := svc.ListAll(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(galleryHttp.ToGalleryResponse(gallery))
		},
	}
}

func (c *cli) folderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "folder <name>",
		Short: "List the assets of one allowed folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			listing, err := svc.ListByFolder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(galleryHttp.ToFolderResponse(listing))
		},
	}
}

func (c *cli) foldersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "Print the folders that may be queried",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(svc.AllowedFolders())
		},
	}
}

// print renders v in the selected format. YAML goes through the JSON form
// so both outputs share the snake_case field names.
func (c *cli) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if c.output == "json" {
		_, err = fmt.Fprintln(c.out, string(data))
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}
