package services

import (
	"context"

	"blogcli/internal/client/api"
	"blogcli/internal/client/state"
)

// AIService drives the content helper: prompt in, generated text out, with
// an optional apply step into the active blog draft.
type AIService struct {
	s *Services
}

// AI helper modes.
const (
	AIModeGenerate = "generate"
	AIModeEnhance  = "enhance"
)

func (ai *AIService) allowed() bool {
	st := ai.s.store
	if !st.Session.Authenticated {
		st.Notifier.Show(state.NotifyError, "Please log in to use AI features")
		return false
	}
	if !st.Session.IsVerified() {
		st.Notifier.Show(state.NotifyError, "Please verify your account to use AI features")
		return false
	}
	return true
}

// OpenHelper opens the helper with a fresh scratchpad. When a draft dialog
// (create or edit) was active it becomes the apply target.
func (ai *AIService) OpenHelper(mode string) {
	st := ai.s.store

	if !ai.allowed() {
		return
	}

	target := state.ModalNone
	if m := st.ActiveModal(); m == state.ModalCreateBlog || m == state.ModalEditBlog {
		target = m
	}

	st.AIHelper = state.AIHelper{Mode: mode, Target: target}
	st.OpenModal(state.ModalAIHelper)
}

// Generate calls the AI endpoint with the helper's prompt. Enhance mode
// sends the target draft's content along and requires it to be non-empty.
// On success with a draft target the user is offered to apply the result.
func (ai *AIService) Generate(ctx context.Context) {
	st := ai.s.store
	helper := &st.AIHelper

	if !ai.allowed() {
		return
	}

	var content string
	if helper.Mode == AIModeEnhance {
		switch helper.Target {
		case state.ModalCreateBlog:
			content = st.NewBlog.Content
		case state.ModalEditBlog:
			content = st.EditBlog.Content
		}
		if content == "" {
			helper.Error = "No content to enhance"
			return
		}
	}

	helper.Error = ""
	helper.Loading = true
	defer func() { helper.Loading = false }()

	generated, err := ai.s.client.GenerateContent(ctx, helper.Prompt, helper.Mode, content)
	if err != nil {
		helper.Error = api.Message(err, "Failed to generate content")
		return
	}

	helper.GeneratedContent = generated

	if helper.Target != state.ModalNone &&
		ai.s.confirm("Would you like to apply the AI-generated content to your blog?") {
		ai.ApplyGeneratedContent()
	}
}

// ApplyGeneratedContent copies the generated text into the target draft and
// returns to that dialog. No-op without generated content.
func (ai *AIService) ApplyGeneratedContent() {
	st := ai.s.store
	helper := &st.AIHelper

	if helper.GeneratedContent == "" {
		return
	}

	switch helper.Target {
	case state.ModalCreateBlog:
		st.NewBlog.Content = helper.GeneratedContent
		st.OpenModal(state.ModalCreateBlog)
	case state.ModalEditBlog:
		st.EditBlog.Content = helper.GeneratedContent
		st.OpenModal(state.ModalEditBlog)
	default:
		st.CloseModals()
	}
}
