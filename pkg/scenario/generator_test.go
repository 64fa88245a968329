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
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"

	"bucketgame/pkg/container"
)

func TestGenerator(t *testing.T) {
	spec.Run(t, "Generator", testGenerator, spec.Report(report.Terminal{}))
}

func testGenerator(t *testing.T, describe spec.G, it spec.S) {
	var subject *Generator
	var cfg Config

	it.Before(func() {
		cfg = DefaultConfig()
		subject = NewGenerator(cfg)
	})

	describe("Number()", func() {
		it("stays within [min, max)", func() {
			for i := 0; i < 1000; i++ {
				n := subject.Number()
				assert.True(t, n >= cfg.MinNumber)
				assert.True(t, n < cfg.MaxNumber)
			}
		})
	})

	describe("Kind()", func() {
		it("samples every kind eventually", func() {
			seen := make(map[container.Kind]bool)
			for i := 0; i < 300; i++ {
				seen[subject.Kind()] = true
			}
			assert.Len(t, seen, len(container.Kinds()))
		})
	})

	describe("Containers()", func() {
		it("names containers after their kind and position", func() {
			specs := subject.Containers(3)
			assert.Len(t, specs, 3)
			for i, cs := range specs {
				assert.Contains(t, string(cs.Name), cs.Kind.String())
				assert.Contains(t, string(cs.Name), []string{"-0", "-1", "-2"}[i])
			}
		})

		it("is repeatable for the same seed", func() {
			assert.Equal(t, NewGenerator(cfg).Containers(10), NewGenerator(cfg).Containers(10))
		})
	})

	describe("Steps()", func() {
		var names []container.ContainerName

		it.Before(func() {
			names = []container.ContainerName{"a", "b", "c"}
		})

		it("generates the requested number of steps", func() {
			assert.Len(t, subject.Steps(names, 25), 25)
		})

		it("only targets the given containers", func() {
			for _, s := range subject.Steps(names, 100) {
				assert.Contains(t, names, s.Target())
				if s.Kind() == StepFillFrom {
					assert.Contains(t, names, s.Source())
				}
				assert.Equal(t, []string{"generated"}, s.Notes())
			}
		})

		it("generates nothing without targets", func() {
			assert.Empty(t, subject.Steps(nil, 10))
		})

		it("is repeatable for the same seed", func() {
			first := NewGenerator(cfg).Steps(names, 30)
			second := NewGenerator(cfg).Steps(names, 30)
			for i := range first {
				assert.Equal(t, first[i].Kind(), second[i].Kind())
				assert.Equal(t, first[i].Target(), second[i].Target())
				assert.Equal(t, first[i].Source(), second[i].Source())
				assert.Equal(t, first[i].Amount(), second[i].Amount())
			}
		})
	})

	describe("Config", func() {
		it("accepts the defaults", func() {
			assert.NoError(t, DefaultConfig().Validate())
		})

		it("needs at least one container", func() {
			cfg.Containers = 0
			assert.Error(t, cfg.Validate())
		})

		it("refuses a negative number of steps", func() {
			cfg.Steps = -1
			assert.Error(t, cfg.Validate())
		})

		it("needs max above min", func() {
			cfg.MaxNumber = cfg.MinNumber
			assert.Error(t, cfg.Validate())
		})
	})
}
