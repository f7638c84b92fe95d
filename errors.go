// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seqdiff

import (
	"znkr.io/seqdiff/internal/config"
	"znkr.io/seqdiff/internal/impl"
)

// Errors used as panic values. Recover the panic and use [errors.Is] to tell them apart.
var (
	// ErrNegativeContext is used when [Context] is called with a negative value.
	ErrNegativeContext = config.ErrNegativeContext

	// ErrNilEqual is used when a ...Func variant is called with a nil equality function.
	ErrNilEqual = config.ErrNilEqual

	// ErrNoBestPath is used when the search for a split point fails. It indicates a bug.
	ErrNoBestPath = impl.ErrNoBestPath
)
