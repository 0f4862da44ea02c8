package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/hashicorp/go-version"
)

const releasesURL = "https://api.github.com/repos/nulzo/agent-models/releases/latest"

type githubRelease struct {
	TagName string `json:"tag_name"`
}

// UpdateChecker compares the running version with the latest GitHub release.
type UpdateChecker struct {
	Client *http.Client
	URL    string
}

func NewUpdateChecker() *UpdateChecker {
	return &UpdateChecker{
		Client: &http.Client{Timeout: 2 * time.Second},
		URL:    releasesURL,
	}
}

// Latest returns the newest released version, or nil when current is already
// up to date.
func (u *UpdateChecker) Latest(ctx context.Context, current string) (*version.Version, error) {
	cur, err := version.NewVersion(current)
	if err != nil {
		return nil, fmt.Errorf("invalid current version %q: %w", current, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := u.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release check returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var release githubRelease
	if err := sonic.Unmarshal(body, &release); err != nil {
		return nil, err
	}

	latest, err := version.NewVersion(release.TagName)
	if err != nil {
		return nil, fmt.Errorf("invalid release tag %q: %w", release.TagName, err)
	}

	if cur.LessThan(latest) {
		return latest, nil
	}
	return nil, nil
}

// PrintUpdateNotice writes a warning to w when a newer release exists. All
// failures are silent.
func (u *UpdateChecker) PrintUpdateNotice(ctx context.Context, w io.Writer, current string) {
	latest, err := u.Latest(ctx, current)
	if err != nil || latest == nil {
		return
	}

	fmt.Fprintln(w, "---------------------------------------------------------")
	fmt.Fprintf(w, "%s  WARNING: You are running an outdated version (%s).\n", WarningSign(), current)
	fmt.Fprintf(w, "   The latest version is %s.\n", latest.Original())
	fmt.Fprintln(w, "---------------------------------------------------------")
}
