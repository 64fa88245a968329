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

func DemoContainers() []ContainerSpec {
	return []ContainerSpec{
		{Name: "oil-barrel", Kind: container.OilBarrel, Content: 12},
		{Name: "bucket", Kind: container.Bucket, Content: 11, Capacity: 12},
		{Name: "pail-a", Kind: container.Bucket, Capacity: 12},
		{Name: "pail-b", Kind: container.Bucket, Capacity: 12},
		{Name: "pail-c", Kind: container.Bucket, Capacity: 12},
		{Name: "oversized-oil-barrel", Kind: container.OilBarrel, Capacity: 999},
		{Name: "target-bucket", Kind: container.Bucket, Content: 5, Capacity: 12},
		{Name: "source-bucket", Kind: container.Bucket, Content: 10, Capacity: 12},
		{Name: "rain-barrel", Kind: container.RainBarrel},
		{Name: "half-oil-barrel", Kind: container.OilBarrel, Content: 50},
	}
}

func DemoSteps() []Step {
	steps := []Step{
		NewFillFrom("bucket", "oil-barrel"),
		NewStep(StepAdd, "pail-a", 5),
		NewStep(StepAdd, "pail-b", 12),
		NewStep(StepAdd, "pail-c", 15),
		NewFillFrom("target-bucket", "source-bucket"),
		NewFillFrom("rain-barrel", "half-oil-barrel"),
		NewFillFrom("rain-barrel", "source-bucket"),
		NewStep(StepRemove, "target-bucket", -3),
		NewStep(StepSetCapacity, "rain-barrel", 80),
	}

	steps[0].AddNote("only a Bucket can be poured from")
	steps[3].AddNote("three units overflow")
	steps[5].AddNote("only a Bucket can be poured from")

	return steps
}
