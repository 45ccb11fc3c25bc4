package cli

import (
	"context"
	"fmt"
	"strings"

	"blogcli/internal/client/services"
	"blogcli/internal/client/state"
)

// AI runs the content helper: pick a mode, describe the content, and review
// the result. When a draft is in progress the helper offers to apply the
// generated text to it.
func (a *App) AI(ctx context.Context) error {
	st := a.store

	mode, err := getSimpleText(a.reader, "Mode: generate or enhance (default generate)", a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(mode) != services.AIModeEnhance {
		mode = services.AIModeGenerate
	} else {
		mode = services.AIModeEnhance
	}

	a.services.AI.OpenHelper(mode)
	if !st.IsOpen(state.ModalAIHelper) {
		a.render()
		return nil
	}

	if err := a.runAIHelper(ctx); err != nil {
		return err
	}

	if st.AIHelper.Error == "" && st.AIHelper.GeneratedContent != "" {
		fmt.Fprintln(a.out, "--- generated content ---")
		fmt.Fprintln(a.out, st.AIHelper.GeneratedContent)
		fmt.Fprintln(a.out, "-------------------------")
	}
	a.render()
	return nil
}

// runAIHelper collects the description and generates. The helper dialog
// must already be open; with a draft target the service offers to apply
// the result itself.
func (a *App) runAIHelper(ctx context.Context) error {
	st := a.store

	prompt, err := GetMultiline(a.reader, "Describe the content you want:", a.out)
	if err != nil {
		return err
	}
	st.AIHelper.Prompt = prompt

	a.services.AI.Generate(ctx)

	if e := st.AIHelper.Error; e != "" {
		fmt.Fprintf(a.out, "[error] %s\n", e)
	}
	return nil
}
