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

import "github.com/pkg/errors"

type Config struct {
	Seed       int64
	Containers int
	Steps      int
	// MinNumber and MaxNumber bound every generated quantity, max exclusive.
	MinNumber int
	MaxNumber int
}

func DefaultConfig() Config {
	return Config{
		Seed:       1,
		Containers: 5,
		Steps:      20,
		MinNumber:  -10,
		MaxNumber:  200,
	}
}

func (c Config) Validate() error {
	if c.Containers < 1 {
		return errors.Errorf("number of containers must be at least 1, was %d", c.Containers)
	}
	if c.Steps < 0 {
		return errors.Errorf("number of steps must not be negative, was %d", c.Steps)
	}
	if c.MaxNumber <= c.MinNumber {
		return errors.Errorf("max number (%d) must be greater than min number (%d)", c.MaxNumber, c.MinNumber)
	}
	return nil
}
