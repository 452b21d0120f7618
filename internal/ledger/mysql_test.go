package ledger

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/iliyamo/seat-booking/internal/model"
)

// tableStub is a database/sql connector that understands the three
// statements MySQLRepository issues against ledger_records.
type tableStub struct {
	mu      sync.Mutex
	rows    map[string][]byte
	created bool
	queries []string
}

func (s *tableStub) Connect(context.Context) (driver.Conn, error) { return &stubConn{s: s}, nil }
func (s *tableStub) Driver() driver.Driver                        { return stubDriver{s} }

type stubDriver struct{ s *tableStub }

func (d stubDriver) Open(string) (driver.Conn, error) { return &stubConn{s: d.s}, nil }

type stubConn struct{ s *tableStub }

func (c *stubConn) Prepare(query string) (driver.Stmt, error) { return &stubStmt{s: c.s, q: query}, nil }
func (c *stubConn) Close() error                              { return nil }
func (c *stubConn) Begin() (driver.Tx, error)                 { return nil, errors.New("no transactions") }

type stubStmt struct {
	s *tableStub
	q string
}

func (st *stubStmt) Close() error  { return nil }
func (st *stubStmt) NumInput() int { return -1 }

func (st *stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.queries = append(st.s.queries, st.q)
	switch {
	case strings.Contains(st.q, "CREATE TABLE"):
		st.s.created = true
	case strings.HasPrefix(st.q, "INSERT INTO ledger_records"):
		key, _ := args[0].(string)
		payload, _ := args[1].([]byte)
		st.s.rows[key] = append([]byte(nil), payload...)
	default:
		return nil, errors.New("unexpected statement: " + st.q)
	}
	return driver.RowsAffected(1), nil
}

func (st *stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if !strings.HasPrefix(st.q, "SELECT payload FROM ledger_records") {
		return nil, errors.New("unexpected query: " + st.q)
	}
	key, _ := args[0].(string)
	payload, ok := st.s.rows[key]
	if !ok {
		return &stubRows{}, nil
	}
	return &stubRows{payloads: [][]byte{payload}}, nil
}

type stubRows struct {
	payloads [][]byte
}

func (r *stubRows) Columns() []string { return []string{"payload"} }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if len(r.payloads) == 0 {
		return io.EOF
	}
	dest[0] = r.payloads[0]
	r.payloads = r.payloads[1:]
	return nil
}

func newStubRepo(t *testing.T) (*MySQLRepository, *tableStub) {
	t.Helper()
	stub := &tableStub{rows: map[string][]byte{}}
	db := sql.OpenDB(stub)
	t.Cleanup(func() { db.Close() })
	return NewMySQLRepository(db), stub
}

func TestMySQLRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, stub := newStubRepo(t)

	if err := repo.EnsureSchema(ctx); err != nil || !stub.created {
		t.Fatalf("expected schema created, got err=%v created=%v", err, stub.created)
	}

	records, err := repo.Load(ctx, "bookings:u1")
	if err != nil {
		t.Fatalf("expected missing key to load cleanly, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty list, got %+v", records)
	}

	first := []model.Booking{{ID: "booking-1", EventName: "Dune", Seats: []string{"A1"}, Status: model.BookingUpcoming}}
	if err := repo.Save(ctx, "bookings:u1", first); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second := append([]model.Booking{{ID: "booking-2", Seats: []string{"B1", "B2"}, Status: model.BookingUpcoming}}, first...)
	if err := repo.Save(ctx, "bookings:u1", second); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got, err := repo.Load(ctx, "bookings:u1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(got) != 2 || got[0].ID != "booking-2" || got[1].ID != "booking-1" || len(got[0].Seats) != 2 {
		t.Fatalf("expected the upserted list, got %+v", got)
	}
	if len(stub.rows) != 1 {
		t.Fatalf("expected one row per key, got %d", len(stub.rows))
	}
}

func TestMySQLRepository_SaveNil(t *testing.T) {
	repo, stub := newStubRepo(t)
	if err := repo.Save(context.Background(), "bookings:u2", nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if string(stub.rows["bookings:u2"]) != "[]" {
		t.Fatalf("expected an empty JSON list, got %q", stub.rows["bookings:u2"])
	}
}

func TestMySQLRepository_BadPayload(t *testing.T) {
	repo, stub := newStubRepo(t)
	stub.rows["bookings:u3"] = []byte("{not json")
	if _, err := repo.Load(context.Background(), "bookings:u3"); err == nil || !strings.Contains(err.Error(), "bookings:u3") {
		t.Fatalf("expected decode error naming the key, got %v", err)
	}
}
