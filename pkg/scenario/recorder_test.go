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

func TestRecorder(t *testing.T) {
	spec.Run(t, "Recorder", testRecorder, spec.Report(report.Terminal{}))
}

func testRecorder(t *testing.T, describe spec.G, it spec.S) {
	var subject *Recorder
	var pail *container.Container

	it.Before(func() {
		subject = NewRecorder()
		pail = container.NewBucket(container.WithName("pail"), container.WithDefaultListeners())
		subject.Attach(pail)
	})

	describe("Attach()", func() {
		it("records notifications after construction", func() {
			pail.AddContent(13)

			assert.Equal(t, 3, subject.Len())
		})

		it("copies the payloads", func() {
			pail.AddContent(14)

			n := subject.Drain()
			assert.Equal(t, Notification{Kind: NotifiedFull, Container: "pail", ContainerKind: container.Bucket}, n[0])
			assert.Equal(t, Notification{Kind: NotifiedOverflowing, Container: "pail", ContainerKind: container.Bucket}, n[1])
			assert.Equal(t, Notification{Kind: NotifiedOverflowing, Container: "pail", ContainerKind: container.Bucket, AlreadyOverflowing: true}, n[2])
			assert.Equal(t, Notification{Kind: NotifiedOverflowed, Container: "pail", ContainerKind: container.Bucket, Lost: 2}, n[3])
		})
	})

	describe("Drain()", func() {
		it("forgets what it returned", func() {
			pail.AddContent(12)

			assert.Len(t, subject.Drain(), 1)
			assert.Empty(t, subject.Drain())
			assert.Equal(t, 0, subject.Len())
		})
	})
}
