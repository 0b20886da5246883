package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownLabel marks a label rejected by the repository because it is not
// defined there. Callers treat it as a warning, not a failure.
var ErrUnknownLabel = errors.New("label not defined in repository")

type Client struct {
	Runner Runner
}

func NewClient(runner Runner) *Client {
	return &Client{Runner: runner}
}

func (c *Client) CheckInstalled() error {
	_, err := exec.LookPath("gh")
	if err != nil {
		return fmt.Errorf("gh CLI not found in PATH")
	}
	return nil
}

func (c *Client) AuthStatus(ctx context.Context) error {
	_, err := c.Runner.Run(ctx, []string{"auth", "status"}, nil)
	return err
}

type PRView struct {
	Number      int     `json:"number"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	Author      UserRef `json:"author"`
	BaseRefName string  `json:"baseRefName"`
	Repository  RepoRef `json:"headRepository"`
}

type UserRef struct {
	Login string `json:"login"`
}

type RepoRef struct {
	NameWithOwner string `json:"nameWithOwner"`
}

// prRefToArgs converts a PR reference (owner/repo#N or URL) to gh CLI args
func prRefToArgs(ref string) []string {
	repo, number, err := ParsePR(ref)
	if err == nil && repo != "" {
		return []string{"-R", repo, strconv.Itoa(number)}
	}
	return []string{ref}
}

func (c *Client) PRView(ctx context.Context, pr string) (PRView, error) {
	args := append([]string{"pr", "view"}, prRefToArgs(pr)...)
	args = append(args, "--json", "number,title,body,author,baseRefName,headRepository")
	output, err := c.Runner.Run(ctx, args, nil)
	if err != nil {
		return PRView{}, err
	}
	var view PRView
	if err := json.Unmarshal(output, &view); err != nil {
		return PRView{}, fmt.Errorf("failed to decode gh pr view output: %w", err)
	}
	return view, nil
}

func (c *Client) PRDiff(ctx context.Context, pr string) (string, error) {
	args := append([]string{"pr", "diff"}, prRefToArgs(pr)...)
	output, err := c.Runner.Run(ctx, args, nil)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// PostComment publishes body as a top-level conversation comment on the PR.
// The body goes through stdin to dodge argv length limits on large reports.
func (c *Client) PostComment(ctx context.Context, pr string, body string) error {
	args := append([]string{"pr", "comment"}, prRefToArgs(pr)...)
	args = append(args, "--body-file", "-")
	_, err := c.Runner.Run(ctx, args, []byte(body))
	return err
}

// AddLabel attaches label to the PR. A label the repository does not define
// comes back as ErrUnknownLabel so callers can downgrade it to a warning.
func (c *Client) AddLabel(ctx context.Context, pr string, label string) error {
	args := append([]string{"pr", "edit"}, prRefToArgs(pr)...)
	args = append(args, "--add-label", label)
	if _, err := c.Runner.Run(ctx, args, nil); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("%w: %q: %v", ErrUnknownLabel, label, err)
		}
		return err
	}
	return nil
}

var prRefRe = regexp.MustCompile(`^([^/]+/[^#]+)#([0-9]+)$`)

func ParsePR(ref string) (repo string, number int, err error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		parsed, parseErr := url.Parse(ref)
		if parseErr != nil {
			return "", 0, fmt.Errorf("invalid PR URL")
		}
		parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
		if len(parts) < 4 || parts[2] != "pull" {
			return "", 0, fmt.Errorf("invalid PR URL")
		}
		repo = fmt.Sprintf("%s/%s", parts[0], parts[1])
		number, err = strconv.Atoi(parts[3])
		if err != nil {
			return "", 0, fmt.Errorf("invalid PR URL")
		}
		return repo, number, nil
	}

	matches := prRefRe.FindStringSubmatch(ref)
	if len(matches) != 3 {
		return "", 0, fmt.Errorf("invalid PR reference")
	}

	number, err = strconv.Atoi(matches[2])
	if err != nil {
		return "", 0, fmt.Errorf("invalid PR reference")
	}
	return matches[1], number, nil
}
