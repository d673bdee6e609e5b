package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/mockmate/internal/pkg/database"
	spanKey             = "tracing:span"
)

var _ gorm.Plugin = (*GormTracingPlugin)(nil)

// GormTracingPlugin 给每一条 SQL 创建一个 span，父 span 来自 WithContext 传入的 ctx
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type registerFunc func(name string, fn func(*gorm.DB)) error

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	ops := []struct {
		op     string
		name   string
		before registerFunc
		after  registerFunc
	}{
		{op: "SELECT", name: "query", before: cb.Query().Before("gorm:query").Register, after: cb.Query().After("gorm:query").Register},
		{op: "INSERT", name: "create", before: cb.Create().Before("gorm:create").Register, after: cb.Create().After("gorm:create").Register},
		{op: "UPDATE", name: "update", before: cb.Update().Before("gorm:update").Register, after: cb.Update().After("gorm:update").Register},
		{op: "DELETE", name: "delete", before: cb.Delete().Before("gorm:delete").Register, after: cb.Delete().After("gorm:delete").Register},
		{op: "RAW", name: "raw", before: cb.Raw().Before("gorm:raw").Register, after: cb.Raw().After("gorm:raw").Register},
		{op: "ROW", name: "row", before: cb.Row().Before("gorm:row").Register, after: cb.Row().After("gorm:row").Register},
	}
	for _, o := range ops {
		if err := o.before("tracing:before_"+o.name, p.before(o.op)); err != nil {
			return err
		}
		if err := o.after("tracing:after_"+o.name, p.after(o.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, span := p.tracer.Start(ctx, fmt.Sprintf("%s %s", db.Statement.Table, op),
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
			attribute.String("db.table", db.Statement.Table),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		if sql := db.Statement.SQL.String(); sql != "" {
			attrs = append(attrs, attribute.String("db.statement", sql))
		}
		span.SetAttributes(attrs...)
		// 找不到数据是正常的业务结果
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
