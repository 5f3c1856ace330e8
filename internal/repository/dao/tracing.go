package dao

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/eventdesk/eventdesk-api/internal/repository/dao")
