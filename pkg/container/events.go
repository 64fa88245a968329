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

type FullEvent struct {
	Container ContainerName
	Kind      Kind
}

type OverflowingEvent struct {
	Container ContainerName
	Kind      Kind
	// AlreadyOverflowing is false only for the first overflow unit of an add.
	AlreadyOverflowing bool
}

type OverflowedEvent struct {
	Container ContainerName
	Kind      Kind
	Lost      int
}

type FullListener func(c *Container, e FullEvent)
type OverflowingListener func(c *Container, e OverflowingEvent)
type OverflowedListener func(c *Container, e OverflowedEvent)

type SubscriptionID uint64

type subscription struct {
	id          SubscriptionID
	full        FullListener
	overflowing OverflowingListener
	overflowed  OverflowedListener
}

// listeners keeps a single ordered list so that Unsubscribe works the same
// way for every signal. Exactly one of the callbacks in a subscription is set.
type listeners struct {
	nextID        SubscriptionID
	subscriptions []subscription
}

func (ls *listeners) add(s subscription) SubscriptionID {
	ls.nextID++
	s.id = ls.nextID
	ls.subscriptions = append(ls.subscriptions, s)
	return s.id
}

func (ls *listeners) remove(id SubscriptionID) bool {
	for i, s := range ls.subscriptions {
		if s.id == id {
			ls.subscriptions = append(ls.subscriptions[:i], ls.subscriptions[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot lets a listener unsubscribe itself without disturbing dispatch.
func (ls *listeners) snapshot() []subscription {
	subs := make([]subscription, len(ls.subscriptions))
	copy(subs, ls.subscriptions)
	return subs
}

func (c *Container) SubscribeFull(l FullListener) SubscriptionID {
	return c.listeners.add(subscription{full: l})
}

func (c *Container) SubscribeOverflowing(l OverflowingListener) SubscriptionID {
	return c.listeners.add(subscription{overflowing: l})
}

func (c *Container) SubscribeOverflowed(l OverflowedListener) SubscriptionID {
	return c.listeners.add(subscription{overflowed: l})
}

func (c *Container) Unsubscribe(id SubscriptionID) bool {
	return c.listeners.remove(id)
}

func (c *Container) onFull() {
	e := FullEvent{Container: c.name, Kind: c.kind}
	for _, s := range c.listeners.snapshot() {
		if s.full != nil {
			s.full(c, e)
		}
	}
}

func (c *Container) onOverflowing(alreadyOverflowing bool) {
	e := OverflowingEvent{Container: c.name, Kind: c.kind, AlreadyOverflowing: alreadyOverflowing}
	for _, s := range c.listeners.snapshot() {
		if s.overflowing != nil {
			s.overflowing(c, e)
		}
	}
}

func (c *Container) onOverflowed(lost int) {
	e := OverflowedEvent{Container: c.name, Kind: c.kind, Lost: lost}
	for _, s := range c.listeners.snapshot() {
		if s.overflowed != nil {
			s.overflowed(c, e)
		}
	}
}
