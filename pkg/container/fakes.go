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

import "github.com/stretchr/testify/mock"

type MockListener struct {
	mock.Mock
}

func (ml *MockListener) Full(c *Container, e FullEvent) {
	ml.Called(e)
}

func (ml *MockListener) Overflowing(c *Container, e OverflowingEvent) {
	ml.Called(e)
}

func (ml *MockListener) Overflowed(c *Container, e OverflowedEvent) {
	ml.Called(e)
}

// FakeListener counts notifications and keeps the payloads in arrival order.
type FakeListener struct {
	FullEvents        []FullEvent
	OverflowingEvents []OverflowingEvent
	OverflowedEvents  []OverflowedEvent
	Order             []string
}

func (fl *FakeListener) Full(c *Container, e FullEvent) {
	fl.FullEvents = append(fl.FullEvents, e)
	fl.Order = append(fl.Order, "full")
}

func (fl *FakeListener) Overflowing(c *Container, e OverflowingEvent) {
	fl.OverflowingEvents = append(fl.OverflowingEvents, e)
	fl.Order = append(fl.Order, "overflowing")
}

func (fl *FakeListener) Overflowed(c *Container, e OverflowedEvent) {
	fl.OverflowedEvents = append(fl.OverflowedEvents, e)
	fl.Order = append(fl.Order, "overflowed")
}

func (fl *FakeListener) Options() []Option {
	return []Option{OnFull(fl.Full), OnOverflowing(fl.Overflowing), OnOverflowed(fl.Overflowed)}
}
