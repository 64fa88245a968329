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
	"fmt"
	"math/rand"

	"bucketgame/pkg/container"
)

// Generator samples container kinds, quantities and steps. The same seed
// always produces the same scenario.
type Generator struct {
	rnd       *rand.Rand
	minNumber int
	maxNumber int
}

func (g *Generator) Kind() container.Kind {
	kinds := container.Kinds()
	return kinds[g.rnd.Intn(len(kinds))]
}

func (g *Generator) Number() int {
	return g.minNumber + g.rnd.Intn(g.maxNumber-g.minNumber)
}

func (g *Generator) Containers(count int) []ContainerSpec {
	specs := make([]ContainerSpec, 0, count)
	for i := 0; i < count; i++ {
		kind := g.Kind()
		specs = append(specs, ContainerSpec{
			Name:     container.ContainerName(fmt.Sprintf("%s-%d", kind, i)),
			Kind:     kind,
			Content:  g.Number(),
			Capacity: g.Number(),
		})
	}
	return specs
}

func (g *Generator) Steps(targets []container.ContainerName, count int) []Step {
	steps := make([]Step, 0, count)
	if len(targets) == 0 {
		return steps
	}

	kinds := StepKinds()
	for i := 0; i < count; i++ {
		kind := kinds[g.rnd.Intn(len(kinds))]
		target := targets[g.rnd.Intn(len(targets))]

		var s Step
		if kind == StepFillFrom {
			s = NewFillFrom(target, targets[g.rnd.Intn(len(targets))])
		} else {
			s = NewStep(kind, target, g.Number())
		}
		s.AddNote("generated")
		steps = append(steps, s)
	}
	return steps
}

func NewGenerator(config Config) *Generator {
	return &Generator{
		rnd:       rand.New(rand.NewSource(config.Seed)),
		minNumber: config.MinNumber,
		maxNumber: config.MaxNumber,
	}
}
