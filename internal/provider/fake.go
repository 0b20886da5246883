package provider

import (
	"context"
	"fmt"
	"os"
)

// FakeInvoker replays a canned provider response from a fixture file.
type FakeInvoker struct {
	FixturePath string
}

func NewFakeInvoker(path string) *FakeInvoker {
	return &FakeInvoker{FixturePath: path}
}

func (f *FakeInvoker) Review(ctx context.Context, instructions, content string) (Assessment, error) {
	_ = ctx
	_ = instructions
	_ = content
	data, err := os.ReadFile(f.FixturePath)
	if err != nil {
		return Assessment{}, fmt.Errorf("failed to read provider fixture: %w", err)
	}
	return ParseAssessment(string(data)), nil
}

func (f *FakeInvoker) Ping(ctx context.Context) error {
	_ = ctx
	return nil
}
