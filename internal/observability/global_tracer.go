package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var globalTracer trace.Tracer

// InitGlobalTracer initializes the global tracer for the application.
func InitGlobalTracer() {
	globalTracer = otel.Tracer("quiz-service")
}

// GetGlobalTracer returns the global tracer instance for the application.
func GetGlobalTracer() trace.Tracer {
	if globalTracer == nil {
		// Fallback to default tracer if not initialized
		globalTracer = otel.Tracer("quiz-service")
	}
	return globalTracer
}

// TraceFunction starts a new span with a descriptive name for the given service and function.
func TraceFunction(ctx context.Context, serviceName, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := GetGlobalTracer()
	spanName := fmt.Sprintf("%s.%s", serviceName, functionName)
	return tracer.Start(ctx, spanName, trace.WithAttributes(attributes...))
}

// TraceHandlerFunction starts a new span for an HTTP handler function.
func TraceHandlerFunction(ctx context.Context, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return TraceFunction(ctx, "handler", functionName, attributes...)
}

// TraceStoreFunction starts a new span for a question store function.
func TraceStoreFunction(ctx context.Context, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return TraceFunction(ctx, "store", functionName, attributes...)
}

// TraceGenerationFunction starts a new span for a generation gateway function.
func TraceGenerationFunction(ctx context.Context, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return TraceFunction(ctx, "generation", functionName, attributes...)
}

// TraceParserFunction starts a new span for a parser function.
func TraceParserFunction(ctx context.Context, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return TraceFunction(ctx, "parser", functionName, attributes...)
}

// AttributeQuestionIndex returns a question index attribute.
func AttributeQuestionIndex(index int) attribute.KeyValue {
	return attribute.Int("question.index", index)
}

// AttributeDifficulty returns a difficulty filter attribute.
func AttributeDifficulty(difficulty string) attribute.KeyValue {
	return attribute.String("question.difficulty", difficulty)
}

// AttributeNumQuestions returns a requested question count attribute.
func AttributeNumQuestions(n int) attribute.KeyValue {
	return attribute.Int("question.count", n)
}

// AttributeTopic returns a generation topic attribute.
func AttributeTopic(topic string) attribute.KeyValue {
	return attribute.String("generation.topic", topic)
}

// AttributeProvider returns a generation provider attribute.
func AttributeProvider(provider string) attribute.KeyValue {
	return attribute.String("generation.provider", provider)
}
