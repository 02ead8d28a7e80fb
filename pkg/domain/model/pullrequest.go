package model

import (
	"strings"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/domain/types"
)

const (
	dependabotLogin = "dependabot[bot]"
	dependabotApp   = "dependabot"
)

// PullRequest is the canonical representation of one upstream pull
// request opened by the dependency update bot. Instances are immutable
// after conversion; they live inside cache entries only.
type PullRequest struct {
	Number          int                    `json:"number"`
	ID              int64                  `json:"id"`
	Title           string                 `json:"title"`
	Author          string                 `json:"author"`
	Repository      string                 `json:"repository"`
	URL             string                 `json:"url"`
	State           types.PullRequestState `json:"state"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	Dependency      *string                `json:"dependency"`
	CurrentVersion  *string                `json:"currentVersion"`
	ProposedVersion *string                `json:"proposedVersion"`
	Body            string                 `json:"body"`
	Commits         int                    `json:"commits"`
	FilesChanged    int                    `json:"filesChanged"`
	HasConflicts    bool                   `json:"hasConflicts"`
}

// IsDependabotAuthor reports whether the given login belongs to the
// dependency update bot: an exact case-insensitive match on the bot
// login, or any login containing "dependabot".
func IsDependabotAuthor(login string) bool {
	lower := strings.ToLower(login)
	return lower == dependabotLogin || strings.Contains(lower, dependabotApp)
}

// ExtractDependency pulls the dependency name out of a bot title.
// "Bump spring-boot from 3.1.0 to 3.2.1" -> "spring-boot". Returns nil
// when the title does not start with "bump " or has no " from " marker.
func ExtractDependency(title string) *string {
	if !strings.HasPrefix(strings.ToLower(title), "bump ") {
		return nil
	}
	rest := title[len("bump "):]
	idx := strings.Index(strings.ToLower(rest), " from ")
	if idx <= 0 {
		return nil
	}
	dep := strings.TrimSpace(rest[:idx])
	return &dep
}

// ExtractCurrentVersion pulls the version being replaced out of a bot
// title: the text between " from " and the first " to " after it.
func ExtractCurrentVersion(title string) *string {
	lower := strings.ToLower(title)
	fromIdx := strings.Index(lower, " from ")
	if fromIdx <= 0 {
		return nil
	}
	afterFrom := fromIdx + len(" from ")
	toIdx := strings.Index(lower[afterFrom:], " to ")
	if toIdx < 0 {
		return nil
	}
	current := strings.TrimSpace(title[afterFrom : afterFrom+toIdx])
	return &current
}

// ExtractProposedVersion pulls the target version out of a bot title:
// the text after the first " to ", cut at the first of '(', '[', space
// or newline. A title without " from " can still yield a proposed
// version as long as " to " is present.
func ExtractProposedVersion(title string) *string {
	toIdx := strings.Index(strings.ToLower(title), " to ")
	if toIdx <= 0 {
		return nil
	}
	afterTo := strings.TrimSpace(title[toIdx+len(" to "):])

	end := len(afterTo)
	for _, c := range []string{"(", "[", " ", "\n"} {
		// A delimiter at position 0 is ignored, matching the upstream
		// bot title quirk.
		if idx := strings.Index(afterTo, c); idx > 0 && idx < end {
			end = idx
		}
	}

	proposed := strings.TrimSpace(afterTo[:end])
	return &proposed
}
