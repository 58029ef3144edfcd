package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/goliatone/go-combobox/pkg/option"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int

	lastInput  InputConfig
	lastSelect SelectConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.lastInput = cfg
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.lastSelect = cfg
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func sampleOptions() []option.Option {
	return option.Normalize([]option.RawOption{
		{ID: "AL", Display: "Alabama"},
		{ID: "AK", Display: "Alaska"},
		{ID: "MI", Display: "Michigan", AutocompletableAs: "Great Lakes State"},
	})
}

func TestAskFieldTrimsAndValidates(t *testing.T) {
	driver := &stubDriver{inputs: []string{"  state_id "}}

	field, err := AskField(context.Background(), driver, "state")
	if err != nil {
		t.Fatalf("AskField: %v", err)
	}
	if field != "state_id" {
		t.Fatalf("expected trimmed field, got %q", field)
	}
	if driver.lastInput.Default != "state" {
		t.Fatalf("expected default to be forwarded, got %q", driver.lastInput.Default)
	}
	if err := driver.lastInput.Validator("   "); err == nil {
		t.Fatalf("expected validator to reject blank field")
	}
}

func TestChooseOptionReturnsSelection(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2}}

	got, ok, err := ChooseOption(context.Background(), driver, "State", sampleOptions(), "")
	if err != nil {
		t.Fatalf("ChooseOption: %v", err)
	}
	if !ok || got.Value != "AK" {
		t.Fatalf("expected Alaska, got %+v (ok=%v)", got, ok)
	}

	labels := driver.lastSelect.Options
	want := []string{NoneLabel, "Alabama", "Alaska", "Great Lakes State"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestChooseOptionDefaultsToCurrentValue(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{0}}

	_, ok, err := ChooseOption(context.Background(), driver, "State", sampleOptions(), "MI")
	if err != nil {
		t.Fatalf("ChooseOption: %v", err)
	}
	if ok {
		t.Fatalf("expected none selection to report false")
	}
	if driver.lastSelect.DefaultIndex != 3 {
		t.Fatalf("expected default index 3, got %d", driver.lastSelect.DefaultIndex)
	}
}

func TestChooseOptionFilterMatchesFilterableAs(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{1}}
	if _, _, err := ChooseOption(context.Background(), driver, "State", sampleOptions(), ""); err != nil {
		t.Fatalf("ChooseOption: %v", err)
	}

	filter := driver.lastSelect.Filter
	if filter == nil {
		t.Fatalf("expected filter to be set")
	}
	if !filter("ALA", 1) || !filter("ala", 2) {
		t.Fatalf("expected case-folded match on Alabama/Alaska")
	}
	if filter("ala", 3) {
		t.Fatalf("expected Michigan to be filtered out")
	}
	if !filter("zzz", 0) {
		t.Fatalf("expected none entry to stay visible")
	}
}

func TestChooseOptionWithoutOptions(t *testing.T) {
	driver := &stubDriver{}

	_, ok, err := ChooseOption(context.Background(), driver, "State", nil, "")
	if err != nil {
		t.Fatalf("ChooseOption: %v", err)
	}
	if ok {
		t.Fatalf("expected no selection")
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected an info message, got %v", driver.infoMessages)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if !errors.Is(translateSurveyErr(terminal.InterruptErr), ErrAborted) {
		t.Fatalf("expected interrupt to map to ErrAborted")
	}
	other := errors.New("boom")
	if translateSurveyErr(other) != other {
		t.Fatalf("expected other errors to pass through")
	}
}

func TestSurveyDriverHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewSurveyDriver(nil)
	if _, err := driver.Input(ctx, InputConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := driver.Select(ctx, SelectConfig{Message: "x", Options: []string{"a"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
