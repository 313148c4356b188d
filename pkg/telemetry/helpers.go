/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

const (
	MetricNameSuffixTotal    = "_total"
	MetricNameSuffixDuration = "_duration_seconds"
)

const (
	AttrKind      = "bookroster_kind"
	AttrOperation = "bookroster_operation"
	AttrStatus    = "bookroster_status"
	AttrErrorKind = "bookroster_error_kind"
	AttrReason    = "bookroster_reason"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func BuildMetricName(baseName, suffix string) string {
	prefixedName := "bookroster_" + baseName
	if suffix == "" {
		return prefixedName
	}
	return prefixedName + suffix
}

// entity kind: company, employee, book, admin
func WithKind(kind string) attribute.KeyValue {
	return attribute.String(AttrKind, kind)
}

func WithOperation(operation string) attribute.KeyValue {
	return attribute.String(AttrOperation, operation)
}

func WithStatus(status string) attribute.KeyValue {
	return attribute.String(AttrStatus, status)
}

// not_found, conflict, validation or internal
func WithErrorKind(errKind string) attribute.KeyValue {
	return attribute.String(AttrErrorKind, errKind)
}

func WithReason(reason string) attribute.KeyValue {
	return attribute.String(AttrReason, reason)
}
