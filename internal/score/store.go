package score

import (
	"database/sql"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	// Both drivers are linked so the pure Go one can stand in where cgo is
	// unavailable
	_ "github.com/glebarez/go-sqlite"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverCgo    = "sqlite3"
	DriverPureGo = "sqlite"
)

// SQLStore keeps key-value pairs in a single SQLite table.
type SQLStore struct {
	db *sql.DB
}

var migrations = []string{
	`create table if not exists kv
	  (
		  name text not null primary key,
		  payload blob not null
	  );`,
}

func OpenSQLStore(driver, path string) (*SQLStore, error) {
	db, err := sql.Open(driver, path)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open %s database %s", driver, path)
	}
	// Writes are serialized and :memory: databases are per connection
	db.SetMaxOpenConns(1)

	s := &SQLStore{db: db}
	applied, err := s.migrate()
	if nil != err {
		db.Close()
		return nil, err
	}
	log.Debug("opened score store", "driver", driver, "path", path, "migrations", applied)
	return s, nil
}

func (s *SQLStore) migrate() (int, error) {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); nil != err && err != sql.ErrNoRows {
		return 0, errors.Wrap(err, "unable to read schema version")
	}

	applied := 0
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.Exec(migrations[i]); nil != err {
			return applied, errors.Wrapf(err, "migration %d failed", i+1)
		}
		// PRAGMA does not take bind parameters
		if _, err := s.db.Exec("PRAGMA user_version = " + strconv.Itoa(i+1)); nil != err {
			return applied, errors.Wrap(err, "unable to record schema version")
		}
		applied++
	}
	return applied, nil
}

func (s *SQLStore) Read(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("select payload from kv where name = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, errors.Wrapf(err, "unable to read %s", key)
	}
	return value, true, nil
}

// Write replaces the value in one transaction, readers see either the old
// or the new value.
func (s *SQLStore) Write(key string, value []byte) error {
	tx, err := s.db.Begin()
	if nil != err {
		return errors.Wrap(err, "unable to begin write")
	}
	if _, err := tx.Exec(
		"insert into kv(name, payload) values(?, ?) on conflict(name) do update set payload = excluded.payload",
		key, value,
	); nil != err {
		tx.Rollback()
		return errors.Wrapf(err, "unable to write %s", key)
	}
	return errors.Wrapf(tx.Commit(), "unable to commit %s", key)
}

func (s *SQLStore) Delete(key string) error {
	_, err := s.db.Exec("delete from kv where name = ?", key)
	return errors.Wrapf(err, "unable to delete %s", key)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
