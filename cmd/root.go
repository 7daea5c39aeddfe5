package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fouadsfarijlani/libfhir/component/mcsd"
	"github.com/fouadsfarijlani/libfhir/lib/fhirutil"
	"github.com/fouadsfarijlani/libfhir/lib/logging"
	"github.com/fouadsfarijlani/libfhir/r4"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute loads the configuration and runs the command given on the command line.
func Execute(ctx context.Context) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := logging.Init(config.Logging); err != nil {
		return errors.Wrap(err, "failed to initialize logging")
	}
	return newRootCommand(config).ExecuteContext(ctx)
}

func newRootCommand(config Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "libfhir",
		Short:         "Inspect mCSD care services resources",
		Long:          "Reads FHIR R4 care services resources (a single resource or a Bundle) and reports on their references.",
		Version:       Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newReferencesCommand(config))
	rootCmd.AddCommand(newCheckCommand(config))
	rootCmd.AddCommand(newExportCommand(config))
	rootCmd.AddCommand(newDirectoriesCommand(config))
	return rootCmd
}

func newReferencesCommand(config Config) *cobra.Command {
	return &cobra.Command{
		Use:   "references <file>",
		Short: "Print the references of every resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, err := loadDirectory(cmd.Context(), config, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, resource := range directory.Resources() {
				for _, ref := range resource.GetReferences() {
					printReference(out, resourceReference(resource), ref)
				}
			}
			return nil
		},
	}
}

func newCheckCommand(config Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Check reference integrity and mCSD update rules",
		Long: "Resolves the references of every resource against the resources in the file and validates the resources " +
			"against the mCSD update rules. In strict mode, dangling references and rejected resources fail the check.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			directory, err := loadDirectory(ctx, config, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			report := directory.CheckReferences(ctx)
			_, _ = fmt.Fprintf(out, "checked: %d, resolved: %d, dangling: %d, unresolved: %d\n",
				report.Checked, report.Resolved, len(report.Dangling), len(report.Unresolved))
			for _, dangling := range report.Dangling {
				_, _ = fmt.Fprint(out, "dangling: ")
				printReference(out, dangling.Source, dangling.Reference)
			}
			for _, unresolved := range report.Unresolved {
				_, _ = fmt.Fprint(out, "unresolved: ")
				printReference(out, unresolved.Source, unresolved.Reference)
			}

			rules := mcsd.ValidationRules{AllowedResourceTypes: config.MCSD.AllowedResourceTypes}
			rejected := 0
			for _, resource := range directory.Resources() {
				if !slices.Contains(rules.AllowedResourceTypes, resource.ResourceType()) {
					continue
				}
				resourceJSON, err := resource.ToJSON()
				if err != nil {
					return errors.Wrapf(err, "marshal %s", resourceReference(resource))
				}
				if _, err := directory.ValidateUpdate(ctx, rules, resourceJSON); err != nil {
					rejected++
					_, _ = fmt.Fprintf(out, "rejected: %s: %s\n", resourceReference(resource), err)
				}
			}

			if !report.OK() || rejected > 0 {
				if config.StrictMode {
					return fmt.Errorf("check failed: %d dangling reference(s), %d rejected resource(s)", len(report.Dangling), rejected)
				}
				log.Ctx(ctx).Warn().Msg("Check found problems, but strict mode is disabled")
			}
			return nil
		},
	}
}

func newExportCommand(config Config) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Print the resources as FHIR transaction Bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, err := loadDirectory(cmd.Context(), config, args[0])
			if err != nil {
				return err
			}
			tx, err := directory.BuildTransaction(cmd.Context())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(tx, "", "  ")
			if err != nil {
				return errors.Wrap(err, "marshal transaction bundle")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newDirectoriesCommand(config Config) *cobra.Command {
	return &cobra.Command{
		Use:   "directories <file>",
		Short: "Print the mCSD Administration Directories announced by the Endpoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, err := loadDirectory(cmd.Context(), config, args[0])
			if err != nil {
				return err
			}
			for _, adminDirectory := range directory.AdministrationDirectories(cmd.Context()) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", adminDirectory.Endpoint, adminDirectory.Address)
			}
			return nil
		},
	}
}

// loadDirectory reads a file holding a Bundle or a single resource into a new directory.
func loadDirectory(ctx context.Context, config Config, file string) (*mcsd.Directory, error) {
	ctx = logging.WithComponent(ctx, "cmd")
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	info, err := fhirutil.ExtractResourceInfo(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", file)
	}
	directory := mcsd.New(config.MCSD)
	if info.ResourceType == "Bundle" {
		if _, err := directory.LoadBundle(ctx, data); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", file)
		}
		return directory, nil
	}
	resource, err := r4.ParseResource(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", file)
	}
	if err := directory.Add(resource); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Msgf("Loaded %s from %s", resourceReference(resource), file)
	return directory, nil
}

func resourceReference(resource r4.Resource) string {
	return resource.ResourceType() + "/" + resource.GetID()
}

func printReference(out io.Writer, source string, ref r4.ReferenceTag) {
	if display := ref.Display(); display != "" {
		_, _ = fmt.Fprintf(out, "%s -> %s (%s)\n", source, ref, display)
		return
	}
	_, _ = fmt.Fprintf(out, "%s -> %s\n", source, ref)
}
