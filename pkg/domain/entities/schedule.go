package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleTask represents one activity on the order's time-and-action
// calendar. DependsOn lists the ids of tasks that must finish first.
type ScheduleTask struct {
	ID           string
	Name         string
	Owner        string
	DurationDays int
	DependsOn    []string
}

// NewScheduleTask creates a validated schedule task
func NewScheduleTask(name, owner string, durationDays int, dependsOn []string) (*ScheduleTask, error) {
	if name == "" {
		return nil, fmt.Errorf("task name cannot be empty")
	}
	if durationDays < 0 {
		return nil, fmt.Errorf("task duration cannot be negative, got %d", durationDays)
	}

	return &ScheduleTask{
		ID:           uuid.NewString(),
		Name:         name,
		Owner:        owner,
		DurationDays: durationDays,
		DependsOn:    dependsOn,
	}, nil
}

// SchedulePathNode carries per-task timing inside a dependency chain
type SchedulePathNode struct {
	TaskID         string
	Name           string
	DurationDays   int
	EarliestStart  int
	EarliestFinish int
}

// SchedulePath represents one complete dependency chain through the schedule
type SchedulePath struct {
	TotalDays   int
	PathLength  int
	TaskIDs     []string
	PathDetails []SchedulePathNode
	Bottleneck  string // name of the longest task in the chain
}

// ScheduleAnalysis contains the results of critical-path analysis over an
// order's schedule
type ScheduleAnalysis struct {
	OrderID      string
	AnalysisDate time.Time
	TotalDays    int // earliest possible completion of the whole schedule
	CriticalPath SchedulePath
	TopPaths     []SchedulePath
	TotalPaths   int
}

// Summary returns a formatted one-line summary of the critical path
func (a *ScheduleAnalysis) Summary() string {
	if len(a.TopPaths) == 0 {
		return "No schedule paths found"
	}

	summary := fmt.Sprintf("Critical Path: %d days over %d tasks",
		a.CriticalPath.TotalDays, a.CriticalPath.PathLength)
	if a.CriticalPath.Bottleneck != "" {
		summary += fmt.Sprintf(" | Bottleneck: %s", a.CriticalPath.Bottleneck)
	}
	return summary
}

// PathSummary returns a formatted summary for a single path
func (p *SchedulePath) PathSummary() string {
	return fmt.Sprintf("%d days - %d tasks - %s", p.TotalDays, p.PathLength, p.Bottleneck)
}
