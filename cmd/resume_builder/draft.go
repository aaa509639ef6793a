package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate a self-introduction draft",
	Long: `Generates one self-introduction draft for a company and position with the
configured LLM provider and prints it. --print-prompt prints the prompt
instead and needs no API key.`,
	RunE: runDraft,
}

var (
	draftCompany     string
	draftPosition    string
	draftField       string
	draftInfo        string
	draftPrintPrompt bool
)

func init() {
	draftCmd.Flags().StringVar(&draftCompany, "company", "", "Target company name (required)")
	draftCmd.Flags().StringVar(&draftPosition, "position", "", "Target position (required)")
	draftCmd.Flags().StringVar(&draftField, "field", string(draft.FieldMotivation), "Field to draft: motivation, strengths or selfIntro")
	draftCmd.Flags().StringVar(&draftInfo, "info", "", "Additional information for the prompt")
	draftCmd.Flags().BoolVar(&draftPrintPrompt, "print-prompt", false, "Print the prompt without calling the LLM")

	_ = draftCmd.MarkFlagRequired("company")
	_ = draftCmd.MarkFlagRequired("position")

	rootCmd.AddCommand(draftCmd)
}

func runDraft(cmd *cobra.Command, _ []string) error {
	req := draft.Request{
		CompanyName:    draftCompany,
		Position:       draftPosition,
		FieldType:      draft.FieldType(draftField),
		AdditionalInfo: draftInfo,
	}.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	if draftPrintPrompt {
		prompt, err := draft.BuildPrompt(req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return nil
	}

	cfg, err := resolveConfig(config.Config{})
	if err != nil {
		return err
	}
	ctx := context.Background()
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("no API key configured for provider %q", cfg.Provider)
	}
	defer client.Close()

	assistant := draft.NewAssistant(client, cfg.DraftTimeout())
	defer assistant.Close()

	ch, err := assistant.Generate(ctx, req)
	if err != nil {
		return err
	}
	state := <-ch
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintDraft(state)
	}
	if state.Status != draft.StatusReady {
		if state.Failure != nil {
			return errors.New(state.Failure.Message)
		}
		return fmt.Errorf("draft generation ended in state %s", state.Status)
	}

	fmt.Fprintln(cmd.OutOrStdout(), state.Text)
	return nil
}
