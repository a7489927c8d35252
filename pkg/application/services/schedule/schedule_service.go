// Package schedule performs critical-path analysis over an order's
// time-and-action calendar.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// Service computes task timing and the longest dependency chains of an
// order's schedule
type Service struct{}

// NewService creates a new schedule service
func NewService() *Service {
	return &Service{}
}

// Analyze computes earliest start/finish for every task and returns the
// top N longest dependency chains. Dependency ids that match no task are
// ignored; a dependency cycle is a validation error.
func (s *Service) Analyze(order *entities.Order, topN int) (*entities.ScheduleAnalysis, error) {
	tasks := make(map[string]*entities.ScheduleTask, len(order.Schedule))
	for _, task := range order.Schedule {
		tasks[task.ID] = task
	}

	finish := make(map[string]int, len(tasks))
	visiting := make(map[string]bool)
	for _, task := range order.Schedule {
		if err := s.computeFinish(task, tasks, finish, visiting); err != nil {
			return nil, err
		}
	}

	allPaths := s.findAllPaths(order.Schedule, tasks, finish)

	analysis := &entities.ScheduleAnalysis{
		OrderID:      order.ID,
		AnalysisDate: time.Now(),
		TotalPaths:   len(allPaths),
	}
	for _, f := range finish {
		if f > analysis.TotalDays {
			analysis.TotalDays = f
		}
	}

	if len(allPaths) == 0 {
		return analysis, nil
	}

	// Longest chain first; ties broken by chain length
	sort.Slice(allPaths, func(i, j int) bool {
		if allPaths[i].TotalDays != allPaths[j].TotalDays {
			return allPaths[i].TotalDays > allPaths[j].TotalDays
		}
		return allPaths[i].PathLength > allPaths[j].PathLength
	})

	topPaths := allPaths
	if len(allPaths) > topN {
		topPaths = allPaths[:topN]
	}

	analysis.CriticalPath = allPaths[0]
	analysis.TopPaths = topPaths

	return analysis, nil
}

// computeFinish memoizes the earliest finish day of a task: the latest
// finish among its dependencies plus its own duration
func (s *Service) computeFinish(
	task *entities.ScheduleTask,
	tasks map[string]*entities.ScheduleTask,
	finish map[string]int,
	visiting map[string]bool,
) error {
	if _, done := finish[task.ID]; done {
		return nil
	}
	if visiting[task.ID] {
		return fmt.Errorf("schedule dependency cycle through task %s", task.Name)
	}
	visiting[task.ID] = true
	defer delete(visiting, task.ID)

	start := 0
	for _, depID := range task.DependsOn {
		dep, ok := tasks[depID]
		if !ok {
			continue
		}
		if err := s.computeFinish(dep, tasks, finish, visiting); err != nil {
			return err
		}
		if finish[dep.ID] > start {
			start = finish[dep.ID]
		}
	}

	finish[task.ID] = start + task.DurationDays
	return nil
}

// findAllPaths enumerates every dependency chain from a source task (no
// dependencies) to a terminal task (no dependents)
func (s *Service) findAllPaths(
	schedule []*entities.ScheduleTask,
	tasks map[string]*entities.ScheduleTask,
	finish map[string]int,
) []entities.SchedulePath {
	hasDependent := make(map[string]bool)
	for _, task := range schedule {
		for _, depID := range task.DependsOn {
			hasDependent[depID] = true
		}
	}

	var paths []entities.SchedulePath
	for _, task := range schedule {
		if hasDependent[task.ID] {
			continue
		}
		// Walk backwards from each terminal task to every reachable source
		for _, chain := range s.chainsEndingAt(task, tasks) {
			paths = append(paths, s.buildPath(chain, finish))
		}
	}
	return paths
}

// chainsEndingAt returns every dependency chain, source first, that ends at
// the given task
func (s *Service) chainsEndingAt(
	task *entities.ScheduleTask,
	tasks map[string]*entities.ScheduleTask,
) [][]*entities.ScheduleTask {
	var deps []*entities.ScheduleTask
	for _, depID := range task.DependsOn {
		if dep, ok := tasks[depID]; ok {
			deps = append(deps, dep)
		}
	}

	if len(deps) == 0 {
		return [][]*entities.ScheduleTask{{task}}
	}

	var chains [][]*entities.ScheduleTask
	for _, dep := range deps {
		for _, prefix := range s.chainsEndingAt(dep, tasks) {
			chain := make([]*entities.ScheduleTask, 0, len(prefix)+1)
			chain = append(chain, prefix...)
			chain = append(chain, task)
			chains = append(chains, chain)
		}
	}
	return chains
}

// buildPath assembles the path summary for one dependency chain
func (s *Service) buildPath(chain []*entities.ScheduleTask, finish map[string]int) entities.SchedulePath {
	path := entities.SchedulePath{
		PathLength: len(chain),
	}

	longest := 0
	for _, task := range chain {
		node := entities.SchedulePathNode{
			TaskID:         task.ID,
			Name:           task.Name,
			DurationDays:   task.DurationDays,
			EarliestFinish: finish[task.ID],
			EarliestStart:  finish[task.ID] - task.DurationDays,
		}
		path.TaskIDs = append(path.TaskIDs, task.ID)
		path.PathDetails = append(path.PathDetails, node)
		path.TotalDays += task.DurationDays

		if task.DurationDays > longest {
			longest = task.DurationDays
			path.Bottleneck = task.Name
		}
	}

	return path
}
