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

import "bucketgame/pkg/container"

type StepKind string

const (
	StepAdd         StepKind = "add"
	StepRemove      StepKind = "remove"
	StepFill        StepKind = "fill"
	StepFillFrom    StepKind = "fill_from"
	StepSetContent  StepKind = "set_content"
	StepSetCapacity StepKind = "set_capacity"
)

func StepKinds() []StepKind {
	return []StepKind{StepAdd, StepRemove, StepFill, StepFillFrom, StepSetContent, StepSetCapacity}
}

type Annotateable interface {
	Notes() []string
	AddNote(note string)
}

type coreStep interface {
	Kind() StepKind
	Target() container.ContainerName
	Source() container.ContainerName
	Amount() int
}

type Step interface {
	coreStep
	Annotateable
}

type step struct {
	kind   StepKind
	target container.ContainerName
	source container.ContainerName
	amount int
	notes  []string
}

func (s *step) Kind() StepKind {
	return s.kind
}

func (s *step) Target() container.ContainerName {
	return s.target
}

// Source is empty for every kind except StepFillFrom.
func (s *step) Source() container.ContainerName {
	return s.source
}

func (s *step) Amount() int {
	return s.amount
}

func (s *step) Notes() []string {
	return s.notes
}

func (s *step) AddNote(note string) {
	s.notes = append(s.notes, note)
}

func NewStep(kind StepKind, target container.ContainerName, amount int) Step {
	return &step{
		kind:   kind,
		target: target,
		amount: amount,
		notes:  make([]string, 0),
	}
}

func NewFillFrom(target, source container.ContainerName) Step {
	return &step{
		kind:   StepFillFrom,
		target: target,
		source: source,
		notes:  make([]string, 0),
	}
}
