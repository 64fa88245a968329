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

type NotificationKind string

const (
	NotifiedFull        NotificationKind = "full"
	NotifiedOverflowing NotificationKind = "overflowing"
	NotifiedOverflowed  NotificationKind = "overflowed"
)

type Notification struct {
	Kind               NotificationKind
	Container          container.ContainerName
	ContainerKind      container.Kind
	AlreadyOverflowing bool
	Lost               int
}

// Recorder keeps every notification of the containers it is attached to,
// in the order they were raised.
type Recorder struct {
	notifications []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{notifications: make([]Notification, 0)}
}

func (r *Recorder) full(c *container.Container, e container.FullEvent) {
	r.notifications = append(r.notifications, Notification{
		Kind:          NotifiedFull,
		Container:     e.Container,
		ContainerKind: e.Kind,
	})
}

func (r *Recorder) overflowing(c *container.Container, e container.OverflowingEvent) {
	r.notifications = append(r.notifications, Notification{
		Kind:               NotifiedOverflowing,
		Container:          e.Container,
		ContainerKind:      e.Kind,
		AlreadyOverflowing: e.AlreadyOverflowing,
	})
}

func (r *Recorder) overflowed(c *container.Container, e container.OverflowedEvent) {
	r.notifications = append(r.notifications, Notification{
		Kind:          NotifiedOverflowed,
		Container:     e.Container,
		ContainerKind: e.Kind,
		Lost:          e.Lost,
	})
}

// Options registers the recorder at construction time, so that overflow of
// the initial content is recorded too.
func (r *Recorder) Options() []container.Option {
	return []container.Option{
		container.OnFull(r.full),
		container.OnOverflowing(r.overflowing),
		container.OnOverflowed(r.overflowed),
	}
}

func (r *Recorder) Attach(c *container.Container) {
	c.SubscribeFull(r.full)
	c.SubscribeOverflowing(r.overflowing)
	c.SubscribeOverflowed(r.overflowed)
}

func (r *Recorder) Len() int {
	return len(r.notifications)
}

// Drain returns what was recorded since the last Drain and forgets it.
func (r *Recorder) Drain() []Notification {
	drained := r.notifications
	r.notifications = make([]Notification, 0)
	return drained
}
