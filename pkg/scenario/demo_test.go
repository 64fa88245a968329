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
	"github.com/stretchr/testify/require"

	"bucketgame/pkg/container"
)

func TestDemo(t *testing.T) {
	spec.Run(t, "Demo scenario", testDemo, spec.Report(report.Terminal{}))
}

func testDemo(t *testing.T, describe spec.G, it spec.S) {
	var subject Runner
	var completed []CompletedStep
	var ignored []IgnoredStep

	it.Before(func() {
		subject = NewRunner(nil)
		for _, cs := range DemoContainers() {
			_, err := subject.Add(cs)
			require.NoError(t, err)
		}

		var err error
		completed, ignored, err = subject.Run(DemoSteps())
		require.NoError(t, err)
	})

	content := func(name container.ContainerName) int {
		c, ok := subject.Container(name)
		require.True(t, ok)
		return c.Content()
	}

	it("raises nothing while setting up", func() {
		assert.Empty(t, subject.SetupNotifications())
	})

	it("ignores fills from anything other than a Bucket and negative amounts", func() {
		require.Len(t, ignored, 3)
		assert.Equal(t, SourceNotBucket, ignored[0].Reason)
		assert.Equal(t, SourceNotBucket, ignored[1].Reason)
		assert.Equal(t, NegativeAmount, ignored[2].Reason)

		assert.Equal(t, 11, content("bucket"))
		assert.Equal(t, 12, content("oil-barrel"))
		assert.Equal(t, 50, content("half-oil-barrel"))
	})

	it("completes the remaining steps", func() {
		assert.Len(t, completed, 6)
	})

	it("adds below, at and above capacity", func() {
		assert.Equal(t, 5, content("pail-a"))
		assert.Equal(t, 12, content("pail-b"))
		assert.Equal(t, 12, content("pail-c"))

		assert.Len(t, completed[0].Notifications, 0)
		assert.Len(t, completed[1].Notifications, 1)
		assert.Len(t, completed[2].Notifications, 5)
	})

	it("normalizes the oversized oil barrel", func() {
		c, _ := subject.Container("oversized-oil-barrel")
		assert.Equal(t, 159, c.Capacity())
	})

	it("fills until the target is full", func() {
		assert.Equal(t, 12, content("target-bucket"))
		assert.Equal(t, 0, content("source-bucket"))
		assert.Equal(t, 7, completed[3].Moved)
	})

	it("pours the rest of the source bucket into the rain barrel", func() {
		assert.Equal(t, 3, completed[4].Moved)
		assert.Equal(t, 3, content("rain-barrel"))
	})

	it("shrinks the rain barrel", func() {
		c, _ := subject.Container("rain-barrel")
		assert.Equal(t, 80, c.Capacity())
	})
}
