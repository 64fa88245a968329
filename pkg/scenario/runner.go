/*
 * Copyright (C) 2019-Present Pivotal Software, Inc. All rights reserved.
 *
 * This program and the accompanying materials are made available under the terms
 * of the Apache License, Version 2.0 (the "License”); you may not use this file
 * except in compliance with the License. You may obtain a copy of the License at:
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package scenario

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"bucketgame/pkg/container"
)

const (
	UnknownContainer = "UnknownContainer"
	NegativeAmount   = "NegativeAmount"
	SourceNotBucket  = "SourceNotBucket"
	SameContainer    = "SameContainer"
)

type ContainerSpec struct {
	Name    container.ContainerName
	Kind    container.Kind
	Content int
	// Capacity is normalized by the kind; 0 ends up at the kind's default.
	Capacity int
}

type Snapshot struct {
	Name     container.ContainerName
	Kind     container.Kind
	Content  int
	Capacity int
	Level    container.Level
}

func snapshot(c *container.Container) Snapshot {
	return Snapshot{
		Name:     c.Name(),
		Kind:     c.Kind(),
		Content:  c.Content(),
		Capacity: c.Capacity(),
		Level:    c.Level(),
	}
}

type CompletedStep struct {
	Step          Step
	TargetBefore  Snapshot
	TargetAfter   Snapshot
	SourceBefore  *Snapshot
	SourceAfter   *Snapshot
	Moved         int
	Notifications []Notification
}

type IgnoredStep struct {
	Step   Step
	Reason string
}

type Runner interface {
	Add(spec ContainerSpec) (*container.Container, error)
	Container(name container.ContainerName) (*container.Container, bool)
	Containers() []*container.Container
	SetupNotifications() []Notification
	Run(steps []Step) (completed []CompletedStep, ignored []IgnoredStep, err error)
}

type runner struct {
	logger     *zap.SugaredLogger
	recorder   *Recorder
	order      []container.ContainerName
	containers map[container.ContainerName]*container.Container
	setup      []Notification
}

// Add builds the container with the default listeners and the runner's
// recorder already registered.
func (r *runner) Add(spec ContainerSpec) (*container.Container, error) {
	if spec.Name == "" {
		return nil, errors.New("could not add container, as it has no name")
	}
	if _, exists := r.containers[spec.Name]; exists {
		return nil, errors.Errorf("container '%s' was already added", spec.Name)
	}

	opts := []container.Option{
		container.WithName(spec.Name),
		container.WithCapacity(spec.Capacity),
		container.WithLogger(r.logger),
		container.WithDefaultListeners(),
	}
	opts = append(opts, r.recorder.Options()...)
	opts = append(opts, container.WithContent(spec.Content))

	c := container.New(spec.Kind, opts...)
	r.containers[spec.Name] = c
	r.order = append(r.order, spec.Name)
	r.setup = append(r.setup, r.recorder.Drain()...)

	return c, nil
}

func (r *runner) Container(name container.ContainerName) (*container.Container, bool) {
	c, ok := r.containers[name]
	return c, ok
}

func (r *runner) Containers() []*container.Container {
	cs := make([]*container.Container, 0, len(r.order))
	for _, name := range r.order {
		cs = append(cs, r.containers[name])
	}
	return cs
}

func (r *runner) SetupNotifications() []Notification {
	return r.setup
}

func (r *runner) Run(steps []Step) (completed []CompletedStep, ignored []IgnoredStep, err error) {
	completed = make([]CompletedStep, 0, len(steps))
	ignored = make([]IgnoredStep, 0)

	for i, s := range steps {
		if s == nil {
			return completed, ignored, errors.Errorf("step %d is nil", i)
		}

		target, source, reason := r.resolve(s)
		if reason != "" {
			r.logger.Debugf("ignored %s on '%s': %s", s.Kind(), s.Target(), reason)
			ignored = append(ignored, IgnoredStep{Step: s, Reason: reason})
			continue
		}

		done := CompletedStep{Step: s, TargetBefore: snapshot(target)}
		if source != nil {
			before := snapshot(source)
			done.SourceBefore = &before
		}

		switch s.Kind() {
		case StepAdd:
			target.AddContent(s.Amount())
		case StepRemove:
			target.RemoveContent(s.Amount())
		case StepFill:
			target.Fill(s.Amount())
		case StepFillFrom:
			done.Moved, _ = target.FillFrom(source)
		case StepSetContent:
			target.SetContent(s.Amount())
		case StepSetCapacity:
			target.SetCapacity(s.Amount())
		default:
			return completed, ignored, errors.Errorf("step %d has unknown kind '%s'", i, s.Kind())
		}

		done.TargetAfter = snapshot(target)
		if source != nil {
			after := snapshot(source)
			done.SourceAfter = &after
		}
		done.Notifications = r.recorder.Drain()

		completed = append(completed, done)
	}

	return completed, ignored, nil
}

func (r *runner) resolve(s Step) (target, source *container.Container, reason string) {
	target, ok := r.containers[s.Target()]
	if !ok {
		return nil, nil, UnknownContainer
	}

	switch s.Kind() {
	case StepAdd, StepRemove, StepFill:
		if s.Amount() < 0 {
			return nil, nil, NegativeAmount
		}
	case StepFillFrom:
		source, ok = r.containers[s.Source()]
		if !ok {
			return nil, nil, UnknownContainer
		}
		if source == target {
			return nil, nil, SameContainer
		}
		if !target.CanFillFrom(source) {
			return nil, nil, SourceNotBucket
		}
	}

	return target, source, ""
}

func NewRunner(logger *zap.SugaredLogger) Runner {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &runner{
		logger:     logger,
		recorder:   NewRecorder(),
		order:      make([]container.ContainerName, 0),
		containers: make(map[container.ContainerName]*container.Container),
		setup:      make([]Notification, 0),
	}
}
