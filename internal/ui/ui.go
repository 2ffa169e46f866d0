// Package ui holds the interactive prompts and progress display of the CLI.
package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sgaunet/ci-stats/internal/security"
)

const (
	proMessage   = "Is this a private repo using Travis Pro?"
	tokenMessage = "GitHub token:"
	tokenHelp    = "Used once to obtain an API token. Set GITHUB_TOKEN to skip this prompt."
)

// SurveyPrompter asks questions on the terminal.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a prompter. Options are passed to every question.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// ConfirmPro asks whether the repository is private and hosted on Travis Pro.
// The default answer is no.
func (p *SurveyPrompter) ConfirmPro() (bool, error) {
	pro := false
	prompt := &survey.Confirm{
		Message: proMessage,
		Default: false,
	}

	if err := survey.AskOne(prompt, &pro, p.opts...); err != nil {
		return false, fmt.Errorf("failed to get repository visibility: %w", err)
	}
	return pro, nil
}

// GitHubToken asks for a GitHub token without echoing it.
func (p *SurveyPrompter) GitHubToken() (security.SecureToken, error) {
	var token string
	prompt := &survey.Password{
		Message: tokenMessage,
		Help:    tokenHelp,
	}

	opts := append([]survey.AskOpt{survey.WithValidator(survey.Required)}, p.opts...)
	if err := survey.AskOne(prompt, &token, opts...); err != nil {
		return security.SecureToken{}, fmt.Errorf("failed to get GitHub token: %w", err)
	}
	return security.NewSecureToken(token), nil
}
