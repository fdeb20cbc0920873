package installer

import (
	"fmt"
	"strings"
)

// StepKind identifies what an install step did.
type StepKind string

const (
	StepCreateDir  StepKind = "mkdir"
	StepClone      StepKind = "clone"
	StepCompletion StepKind = "completion"
)

// Step is the outcome of one install action.
type Step struct {
	Kind   StepKind
	Name   string
	Target string
	// Output holds whatever the subprocess printed.
	Output string
	Err    error
}

func (s *Step) Failed() bool { return s.Err != nil }

// Report collects the steps of one Install run in execution order.
type Report struct {
	// Created is true when the plugin directory did not exist beforehand.
	Created bool
	Steps   []*Step
}

func (r *Report) add(step *Step) *Step {
	r.Steps = append(r.Steps, step)
	return step
}

// Failures returns the failed steps.
func (r *Report) Failures() []*Step {
	var result []*Step
	for _, step := range r.Steps {
		if step.Failed() {
			result = append(result, step)
		}
	}
	return result
}

func (r *Report) HasFailures() bool {
	return len(r.Failures()) > 0
}

// Summary renders one line per step.
func (r *Report) Summary() string {
	var b strings.Builder
	for _, step := range r.Steps {
		status := "ok"
		if step.Failed() {
			status = "failed: " + step.Err.Error()
		}
		fmt.Fprintf(&b, "%-10s %-22s %s (%s)\n", step.Kind, step.Name, step.Target, status)
	}
	return b.String()
}
