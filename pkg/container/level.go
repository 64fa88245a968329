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

package container

import (
	"context"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

type Level string

const (
	LevelEmpty   Level = "empty"
	LevelPartial Level = "partial"
	LevelFull    Level = "full"
)

const (
	eventEmptied = "emptied"
	eventLeveled = "leveled"
	eventTopped  = "topped"
)

type levelTracker struct {
	machine *fsm.FSM
}

func newLevelTracker(logger *zap.SugaredLogger) *levelTracker {
	machine := fsm.NewFSM(
		string(LevelEmpty),
		fsm.Events{
			{Name: eventEmptied, Src: []string{string(LevelPartial), string(LevelFull)}, Dst: string(LevelEmpty)},
			{Name: eventLeveled, Src: []string{string(LevelEmpty), string(LevelFull)}, Dst: string(LevelPartial)},
			{Name: eventTopped, Src: []string{string(LevelEmpty), string(LevelPartial)}, Dst: string(LevelFull)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debugf("level %s -> %s", e.Src, e.Dst)
			},
		},
	)

	return &levelTracker{machine: machine}
}

func (lt *levelTracker) current() Level {
	return Level(lt.machine.Current())
}

func (lt *levelTracker) sync(content, capacity int) {
	target, event := levelFor(content, capacity)
	if lt.current() == target {
		return
	}

	// Every level is reachable from every other one, so this cannot fail.
	_ = lt.machine.Event(context.Background(), event)
}

func levelFor(content, capacity int) (Level, string) {
	switch {
	case content <= 0:
		return LevelEmpty, eventEmptied
	case content >= capacity:
		return LevelFull, eventTopped
	default:
		return LevelPartial, eventLeveled
	}
}
