package decorator

import (
	"context"
	"iter"
	"log"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	apperrors "userstore/internal/errors"
	"userstore/internal/service"
	"userstore/internal/user"
)

// Logging logs every call made to the wrapped service while enabled.
type Logging struct {
	next    service.Service
	logger  *log.Logger
	name    string
	enabled bool
}

// NewLogging wraps next. name prefixes every line; a nil logger uses
// log.Default(). When enabled is false calls are forwarded silently.
func NewLogging(next service.Service, logger *log.Logger, name string, enabled bool) *Logging {
	if logger == nil {
		logger = log.Default()
	}
	return &Logging{
		next:    next,
		logger:  logger,
		name:    name,
		enabled: enabled,
	}
}

func (l *Logging) logf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.logger.Printf("[%s] "+format, append([]any{l.name}, args...)...)
}

// done logs a failure together with the gRPC code and reason a transport
// would report for it, plus the offending field for validation failures.
func (l *Logging) done(method string, err error) {
	if err == nil || !l.enabled {
		return
	}
	st := status.Convert(apperrors.ToGRPC(err))
	field := ""
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok && len(br.GetFieldViolations()) > 0 {
			field = " field=" + br.GetFieldViolations()[0].GetField()
		}
	}
	l.logf("%s failed: %v (code=%s reason=%s%s)", method, err, st.Code(), apperrors.GetCode(err), field)
}

// Count logs the call, then forwards it.
func (l *Logging) Count() int {
	l.logf("Count called")
	return l.next.Count()
}

// Add logs the call, then forwards it.
func (l *Logging) Add(ctx context.Context, u user.User) error {
	l.logf("Add called: %s", u)
	err := l.next.Add(ctx, u)
	l.done("Add", err)
	return err
}

// Remove logs the call, then forwards it.
func (l *Logging) Remove(ctx context.Context, u user.User) error {
	l.logf("Remove called: %s", u)
	err := l.next.Remove(ctx, u)
	l.done("Remove", err)
	return err
}

// Search logs the call, then forwards it.
func (l *Logging) Search(ctx context.Context, pred user.Predicate) (iter.Seq[user.User], error) {
	l.logf("Search called")
	seq, err := l.next.Search(ctx, pred)
	l.done("Search", err)
	return seq, err
}

// SearchByFirstName logs the call, then forwards it.
func (l *Logging) SearchByFirstName(ctx context.Context, firstName string) (iter.Seq[user.User], error) {
	l.logf("SearchByFirstName called: firstName=%q", firstName)
	seq, err := l.next.SearchByFirstName(ctx, firstName)
	l.done("SearchByFirstName", err)
	return seq, err
}

// SearchByLastName logs the call, then forwards it.
func (l *Logging) SearchByLastName(ctx context.Context, lastName string) (iter.Seq[user.User], error) {
	l.logf("SearchByLastName called: lastName=%q", lastName)
	seq, err := l.next.SearchByLastName(ctx, lastName)
	l.done("SearchByLastName", err)
	return seq, err
}

// SearchByAge logs the call, then forwards it.
func (l *Logging) SearchByAge(ctx context.Context, age int) (iter.Seq[user.User], error) {
	l.logf("SearchByAge called: age=%d", age)
	seq, err := l.next.SearchByAge(ctx, age)
	l.done("SearchByAge", err)
	return seq, err
}

// SearchByFirstNameAndLastName logs the call, then forwards it.
func (l *Logging) SearchByFirstNameAndLastName(ctx context.Context, firstName, lastName string) (iter.Seq[user.User], error) {
	l.logf("SearchByFirstNameAndLastName called: firstName=%q lastName=%q", firstName, lastName)
	seq, err := l.next.SearchByFirstNameAndLastName(ctx, firstName, lastName)
	l.done("SearchByFirstNameAndLastName", err)
	return seq, err
}

// SearchByFirstNameAndAge logs the call, then forwards it.
func (l *Logging) SearchByFirstNameAndAge(ctx context.Context, firstName string, age int) (iter.Seq[user.User], error) {
	l.logf("SearchByFirstNameAndAge called: firstName=%q age=%d", firstName, age)
	seq, err := l.next.SearchByFirstNameAndAge(ctx, firstName, age)
	l.done("SearchByFirstNameAndAge", err)
	return seq, err
}

// SearchByLastNameAndAge logs the call, then forwards it.
func (l *Logging) SearchByLastNameAndAge(ctx context.Context, lastName string, age int) (iter.Seq[user.User], error) {
	l.logf("SearchByLastNameAndAge called: lastName=%q age=%d", lastName, age)
	seq, err := l.next.SearchByLastNameAndAge(ctx, lastName, age)
	l.done("SearchByLastNameAndAge", err)
	return seq, err
}

// SearchByFirstNameAndLastNameAndAge logs the call, then forwards it.
func (l *Logging) SearchByFirstNameAndLastNameAndAge(ctx context.Context, firstName, lastName string, age int) (iter.Seq[user.User], error) {
	l.logf("SearchByFirstNameAndLastNameAndAge called: firstName=%q lastName=%q age=%d", firstName, lastName, age)
	seq, err := l.next.SearchByFirstNameAndLastNameAndAge(ctx, firstName, lastName, age)
	l.done("SearchByFirstNameAndLastNameAndAge", err)
	return seq, err
}

var _ service.Service = (*Logging)(nil)
