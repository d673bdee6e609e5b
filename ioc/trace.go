package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// InitZipkinTracer 初始化 zipkin tracer
func InitZipkinTracer() *trace.TracerProvider {
	// 创建资源信息
	res, err := newResource()
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}

	// 初始化传播器
	otel.SetTextMapPropagator(newPropagator())

	// 初始化 tracer provider
	tp, err := newTracerProvider(res)
	if err != nil {
		elog.Panic("init tracer provider failed", elog.FieldErr(err))
	}

	// 设置全局 tracer provider
	otel.SetTracerProvider(tp)

	return tp
}

// newResource 创建 OpenTelemetry 资源
func newResource() (*resource.Resource, error) {
	serviceName := econf.GetString("trace.zipkin.serviceName")
	serviceVersion := econf.GetString("trace.zipkin.serviceVersion")
	if serviceVersion == "" {
		serviceVersion = "v0.0.1"
	}

	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
}

// newTracerProvider 创建 tracer provider
func newTracerProvider(res *resource.Resource) (*trace.TracerProvider, error) {
	exporter, err := newExporter()
	if err != nil {
		return nil, err
	}
	// 没配置采样率就全部采样
	ratio := 1.0
	if econf.Get("trace.zipkin.sampleRatio") != nil {
		ratio = econf.GetFloat64("trace.zipkin.sampleRatio")
	}
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithResource(res),
	), nil
}

// newExporter 没有配置 Zipkin 的时候输出到标准输出，方便本地调试
func newExporter() (trace.SpanExporter, error) {
	zipkinEndpoint := econf.GetString("trace.zipkin.endpoint")
	if zipkinEndpoint == "" {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	return zipkin.New(zipkinEndpoint)
}

// newPropagator 创建上下文传播器
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}
