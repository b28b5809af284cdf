package decorator

import (
	"context"
	"iter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"userstore/internal/service"
	"userstore/internal/user"
)

const instrumentationName = "userstore/internal/decorator"

// Tracing opens one span per call made to the wrapped service.
type Tracing struct {
	next   service.Service
	tracer trace.Tracer
}

// NewTracing wraps next. A nil provider uses the global tracer provider.
func NewTracing(next service.Service, tp trace.TracerProvider) *Tracing {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Tracing{
		next:   next,
		tracer: tp.Tracer(instrumentationName),
	}
}

func (t *Tracing) start(ctx context.Context, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "UserStorage."+method, trace.WithAttributes(attrs...))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (t *Tracing) search(ctx context.Context, method string, fn func(context.Context) (iter.Seq[user.User], error), attrs ...attribute.KeyValue) (iter.Seq[user.User], error) {
	ctx, span := t.start(ctx, method, attrs...)
	seq, err := fn(ctx)
	finish(span, err)
	return seq, err
}

// Count has no context to attach a span to and is forwarded as is.
func (t *Tracing) Count() int {
	return t.next.Count()
}

// Add forwards the call inside a span.
func (t *Tracing) Add(ctx context.Context, u user.User) error {
	ctx, span := t.start(ctx, "Add", attribute.String("user.id", u.ID))
	err := t.next.Add(ctx, u)
	finish(span, err)
	return err
}

// Remove forwards the call inside a span.
func (t *Tracing) Remove(ctx context.Context, u user.User) error {
	ctx, span := t.start(ctx, "Remove", attribute.String("user.id", u.ID))
	err := t.next.Remove(ctx, u)
	finish(span, err)
	return err
}

// Search forwards the call inside a span.
func (t *Tracing) Search(ctx context.Context, pred user.Predicate) (iter.Seq[user.User], error) {
	return t.search(ctx, "Search", func(ctx context.Context) (iter.Seq[user.User], error) {
		return t.next.Search(ctx, pred)
	})
}

// SearchByFirstName forwards the call inside a span.
func (t *Tracing) SearchByFirstName(ctx context.Context, firstName string) (iter.Seq[user.User], error) {
	return t.search(ctx, "SearchByFirstName", func(ctx context.Context) (iter.Seq[user.User], error) {
		return t.next.SearchByFirstName(ctx, firstName)
	}, attribute.String("user.first_name", firstName))
}

// SearchByLastName forwards the call inside a span.
func (t *Tracing) SearchByLastName(ctx context.Context, lastName string) (iter.Seq[user.User], error) {
	return t.search(ctx, "SearchByLastName", func(ctx context.Context) (iter.Seq[user.User], error) {
		return t.next.SearchByLastName(ctx, lastName)
	}, attribute.String("user.last_name", lastName))
}

// SearchByAge forwards the call inside a span.
func (t *Tracing) SearchByAge(ctx context.Context, age int) (iter.Seq[user.User], error) {
	return t.search(ctx, "SearchByAge", func(ctx context.Context) (iter.Seq[user.User], error) {
		return t.next.SearchByAge(ctx, age)
	}, attribute.Int("user.age", age))
}

// SearchByFirstNameAndLastName forwards the call inside a span.
func (t *Tracing) SearchByFirstNameAndLastName(ctx context.Context, firstName, lastName string) (iter.Seq[user.User], error) {
	return t.search(ctx, "SearchByFirstNameAndLastName", func(ctx context.Context) (iter.Seq[user.User], error) {
		return t.next.SearchByFirstNameAndLastName(ctx, firstName, lastName)
	}, attribute.String("user.first_name", firstName), attribute.String("user.last_name", lastName))
}

// SearchByFirstNameAndAge forwards the call inside a span.
func (t *Tracing) SearchByFirstNameAndAge(ctx context.Context, firstName string, age int) (iter.Seq[user.User], error) {
	return t.search(ctx, "SearchByFirstNameAndAge", func(ctx context.Context) (iter.Seq[user.User], error) {
		return t.next.SearchByFirstNameAndAge(ctx, firstName, age)
	}, attribute.String("user.first_name", firstName), attribute.Int("user.age", age))
}

// SearchByLastNameAndAge forwards the call inside a span.
func (t *Tracing) SearchByLastNameAndAge(ctx context.Context, lastName string, age int) (iter.Seq[user.User], error) {
	return t.search(ctx, "SearchByLastNameAndAge", func(ctx context.Context) (iter.Seq[user.User], error) {
		return t.next.SearchByLastNameAndAge(ctx, lastName, age)
	}, attribute.String("user.last_name", lastName), attribute.Int("user.age", age))
}

// SearchByFirstNameAndLastNameAndAge forwards the call inside a span.
func (t *Tracing) SearchByFirstNameAndLastNameAndAge(ctx context.Context, firstName, lastName string, age int) (iter.Seq[user.User], error) {
	return t.search(ctx, "SearchByFirstNameAndLastNameAndAge", func(ctx context.Context) (iter.Seq[user.User], error) {
		return t.next.SearchByFirstNameAndLastNameAndAge(ctx, firstName, lastName, age)
	}, attribute.String("user.first_name", firstName), attribute.String("user.last_name", lastName), attribute.Int("user.age", age))
}

var _ service.Service = (*Tracing)(nil)
