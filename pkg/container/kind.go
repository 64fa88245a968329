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
	"strings"
)

type Kind int

const (
	Bucket Kind = iota
	RainBarrel
	OilBarrel
)

const (
	BucketMinCapacity     = 10
	BucketDefaultCapacity = 12
	BucketMaxCapacity     = 15

	RainBarrelSmall  = 80
	RainBarrelMedium = 120
	RainBarrelLarge  = 160

	OilBarrelCapacity = 159
)

func (k Kind) String() string {
	switch k {
	case Bucket:
		return "Bucket"
	case RainBarrel:
		return "RainBarrel"
	case OilBarrel:
		return "OilBarrel"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func Kinds() []Kind {
	return []Kind{Bucket, RainBarrel, OilBarrel}
}

// ParseKind accepts the kind names case-insensitively, with or without
// separators ("rain_barrel", "Rain-Barrel" and "rainbarrel" are the same).
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(name)
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)

	for _, k := range Kinds() {
		if strings.ToLower(k.String()) == normalized {
			return k, nil
		}
	}

	return -1, fmt.Errorf("unknown container kind '%s'", name)
}

type capacityPolicy struct {
	accepts         func(capacity int) bool
	defaultCapacity int
}

var capacityPolicies = map[Kind]capacityPolicy{
	Bucket: {
		accepts: func(capacity int) bool {
			return capacity >= BucketMinCapacity && capacity <= BucketMaxCapacity
		},
		defaultCapacity: BucketDefaultCapacity,
	},
	RainBarrel: {
		accepts: func(capacity int) bool {
			switch capacity {
			case RainBarrelSmall, RainBarrelMedium, RainBarrelLarge:
				return true
			}
			return false
		},
		defaultCapacity: RainBarrelMedium,
	},
	OilBarrel: {
		accepts: func(capacity int) bool {
			return capacity == OilBarrelCapacity
		},
		defaultCapacity: OilBarrelCapacity,
	},
}

// NormalizeCapacity returns requested when the kind accepts it, otherwise the
// kind's canonical default. Unknown kinds normalize to 0.
func NormalizeCapacity(kind Kind, requested int) int {
	policy, ok := capacityPolicies[kind]
	if !ok {
		return 0
	}

	if policy.accepts(requested) {
		return requested
	}

	return policy.defaultCapacity
}

func DefaultCapacity(kind Kind) int {
	return capacityPolicies[kind].defaultCapacity
}
