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

import "go.uber.org/zap"

// RetractOverflow removes the unit that pushed a container past its capacity.
// A container without it keeps every overflowing unit.
func RetractOverflow(c *Container, _ OverflowingEvent) {
	c.RemoveContent(1)
}

func LogFull(logger *zap.SugaredLogger) FullListener {
	return func(c *Container, e FullEvent) {
		logger.Infof("%s %s is full, please empty it before it overflows", e.Kind, e.Container)
	}
}

// LogOverflowing only reports the first unit of an overflow at warn level,
// the following units go to debug.
func LogOverflowing(logger *zap.SugaredLogger) OverflowingListener {
	return func(c *Container, e OverflowingEvent) {
		if e.AlreadyOverflowing {
			logger.Debugf("%s %s is still overflowing", e.Kind, e.Container)
			return
		}
		logger.Warnf("%s %s is overflowing", e.Kind, e.Container)
	}
}

func LogOverflowed(logger *zap.SugaredLogger) OverflowedListener {
	return func(c *Container, e OverflowedEvent) {
		logger.Warnf("%s %s overflowed, %d lost", e.Kind, e.Container, e.Lost)
	}
}

func AttachDefaultListeners(c *Container, logger *zap.SugaredLogger) {
	c.SubscribeFull(LogFull(logger))
	c.SubscribeOverflowing(RetractOverflow)
	c.SubscribeOverflowing(LogOverflowing(logger))
	c.SubscribeOverflowed(LogOverflowed(logger))
}
