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
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const nearCapacityRatio = 0.9

type ContainerName string

type Container struct {
	name     ContainerName
	kind     Kind
	content  int
	capacity int

	listeners listeners
	level     *levelTracker
	logger    *zap.SugaredLogger
}

type Option func(cfg *config)

type config struct {
	name             ContainerName
	content          int
	capacity         *int
	logger           *zap.SugaredLogger
	defaultListeners bool

	full        []FullListener
	overflowing []OverflowingListener
	overflowed  []OverflowedListener
}

func WithName(name ContainerName) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

func WithContent(content int) Option {
	return func(cfg *config) {
		cfg.content = content
	}
}

func WithCapacity(capacity int) Option {
	return func(cfg *config) {
		cfg.capacity = &capacity
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithDefaultListeners attaches the logging listeners and RetractOverflow,
// using the container's own logger.
func WithDefaultListeners() Option {
	return func(cfg *config) {
		cfg.defaultListeners = true
	}
}

func OnFull(l FullListener) Option {
	return func(cfg *config) {
		cfg.full = append(cfg.full, l)
	}
}

func OnOverflowing(l OverflowingListener) Option {
	return func(cfg *config) {
		cfg.overflowing = append(cfg.overflowing, l)
	}
}

func OnOverflowed(l OverflowedListener) Option {
	return func(cfg *config) {
		cfg.overflowed = append(cfg.overflowed, l)
	}
}

// New builds a container of the given kind. Listeners passed as options are
// registered before the initial content is staged, so an initial content
// above capacity overflows exactly as a later AddContent would.
func New(kind Kind, opts ...Option) *Container {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.name == "" {
		cfg.name = ContainerName(fmt.Sprintf("%s-%s", kind, uuid.New().String()[:8]))
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop().Sugar()
	}

	requested := DefaultCapacity(kind)
	if cfg.capacity != nil {
		requested = *cfg.capacity
	}

	c := &Container{
		name:     cfg.name,
		kind:     kind,
		capacity: NormalizeCapacity(kind, requested),
		logger:   cfg.logger.Named(string(cfg.name)),
	}
	c.level = newLevelTracker(c.logger)

	if cfg.defaultListeners {
		AttachDefaultListeners(c, c.logger)
	}
	for _, l := range cfg.full {
		c.SubscribeFull(l)
	}
	for _, l := range cfg.overflowing {
		c.SubscribeOverflowing(l)
	}
	for _, l := range cfg.overflowed {
		c.SubscribeOverflowed(l)
	}

	c.AddContent(cfg.content)

	return c
}

func NewBucket(opts ...Option) *Container {
	return New(Bucket, opts...)
}

func NewRainBarrel(opts ...Option) *Container {
	return New(RainBarrel, opts...)
}

func NewOilBarrel(opts ...Option) *Container {
	return New(OilBarrel, opts...)
}

func (c *Container) Name() ContainerName {
	return c.name
}

func (c *Container) Kind() Kind {
	return c.kind
}

func (c *Container) Content() int {
	return c.content
}

// SetContent empties the container and adds content through AddContent.
func (c *Container) SetContent(content int) {
	c.overwriteContent(content)
}

func (c *Container) Capacity() int {
	return c.capacity
}

// SetCapacity normalizes capacity for the container's kind. Content left
// above the new capacity is staged again so that it overflows.
func (c *Container) SetCapacity(capacity int) {
	c.capacity = NormalizeCapacity(c.kind, capacity)

	if c.content > c.capacity {
		c.overwriteContent(c.content)
		return
	}
	c.level.sync(c.content, c.capacity)
}

func (c *Container) Level() Level {
	return c.level.current()
}

func (c *Container) AddContent(amount int) {
	if amount < 0 {
		return
	}

	overflowing := false
	lost := 0
	for ; amount > 0; amount-- {
		c.content++

		if c.content == c.capacity {
			c.onFull()
		} else if c.content > c.capacity {
			c.onOverflowing(overflowing)
			overflowing = true
			lost++
		}
	}

	if overflowing {
		c.onOverflowed(lost)
	} else if float64(c.content) > float64(c.capacity)*nearCapacityRatio && c.content < c.capacity {
		c.logger.Debugf("%s is nearly full (%d/%d), empty it before it overflows", c.name, c.content, c.capacity)
	}

	c.level.sync(c.content, c.capacity)
}

func (c *Container) RemoveContent(amount int) {
	if amount < 0 {
		return
	}

	for ; amount > 0 && c.content > 0; amount-- {
		c.content--
	}

	c.level.sync(c.content, c.capacity)
}

func (c *Container) overwriteContent(content int) {
	c.content = 0
	c.AddContent(content)
}

func (c *Container) Fill(amount int) {
	c.AddContent(amount)
}

// AddFrom moves units from source one at a time until source is empty or c
// is at capacity. It returns the number of units moved.
func (c *Container) AddFrom(source *Container) (moved int) {
	if source == nil || source == c {
		return 0
	}

	for source.content > 0 && c.content < c.capacity {
		c.AddContent(1)
		source.RemoveContent(1)
		moved++
	}

	if source.content > 0 && c.content >= c.capacity {
		c.logger.Debugf("stopped filling %s from %s because it would have overflowed otherwise", c.name, source.name)
	}

	return moved
}

// CanFillFrom reports whether FillFrom would accept source. Any container
// may only be filled from a Bucket.
func (c *Container) CanFillFrom(source *Container) bool {
	return source != nil && source != c && source.kind == Bucket
}

// FillFrom transfers from source when CanFillFrom allows it. A rejected
// source leaves both containers untouched.
func (c *Container) FillFrom(source *Container) (moved int, accepted bool) {
	if !c.CanFillFrom(source) {
		if source != nil {
			c.logger.Debugf("refused to fill %s from %s; only a %s can be poured from", c.name, source.name, Bucket)
		}
		return 0, false
	}

	return c.AddFrom(source), true
}

func (c *Container) String() string {
	return fmt.Sprintf("%s[%s %d/%d]", c.name, c.kind, c.content, c.capacity)
}
