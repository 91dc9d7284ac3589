package storage

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	seqSuffix     = ".seq"
	corruptSuffix = ".corrupt-"
	corruptStamp  = "20060102T150405.000000000"
	jsonIndent    = "    "
	filePerm      = 0o644
	dirPerm       = 0o755
)

type config interface {
	DataFile() string
	Location() *time.Location
}

// JSONStorage keeps the expense list in memory and mirrors it to a single
// JSON document, rewritten in full after every successful mutation.
// The last assigned id lives in a sidecar file so ids are never reused.
// The sidecar also carries the epoch, bumped whenever a corrupted document
// is thrown away, so data derived from the lost records can be told apart.
type JSONStorage struct {
	mu      sync.Mutex
	path    string
	loc     *time.Location
	now     func() time.Time
	records []expense.Record
	lastID  int64
	epoch   int64
}

func NewJSONStorage(config config) (*JSONStorage, error) {
	s := &JSONStorage{
		path: config.DataFile(),
		loc:  config.Location(),
		now:  time.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if err := s.Load(context.Background()); err != nil {
		return nil, errors.Wrap(err, "init json storage")
	}
	return s, nil
}

// Load replaces the in-memory state with the document on disk. A missing
// document means an empty store. A document that cannot be decoded is moved
// aside and the store starts empty.
func (s *JSONStorage) Load(ctx context.Context) (err error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "storage.Load")
	defer func() {
		finishSpan(span, err)
		observeOperation("load", err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	lastID, epoch := s.readSeq()
	s.epoch = epoch

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("no expenses file yet, starting empty", zap.String("path", s.path))
		s.commit(nil, lastID)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "load expenses")
	}

	records, err := decodeRecords(raw)
	if err != nil {
		logger.Error("expenses file is corrupted, starting with empty data",
			zap.String("path", s.path), zap.Error(err))
		s.quarantine()
		s.epoch = s.now().UnixNano()
		if err = writeFileAtomic(s.seqPath(), s.encodeSeq(lastID)); err != nil {
			logger.Warn("cannot save id counter", zap.String("path", s.seqPath()), zap.Error(err))
		}
		s.commit(nil, lastID)
		return nil
	}

	for _, rec := range records {
		if rec.ID > lastID {
			lastID = rec.ID
		}
	}
	s.commit(records, lastID)
	logger.Info("expenses loaded", zap.String("path", s.path), zap.Int("count", len(records)))
	return nil
}

func decodeRecords(raw []byte) ([]expense.Record, error) {
	var records []expense.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrap(err, "decode expenses")
	}
	seen := make(map[int64]struct{}, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[rec.ID]; ok {
			return nil, errors.Errorf("duplicate expense id %d", rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	return records, nil
}

// CacheScope identifies this document and its epoch for keys of data
// derived from it.
func (s *JSONStorage) CacheScope() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return fmt.Sprintf("%x.%d", sum[:6], s.epoch)
}

func (s *JSONStorage) Add(ctx context.Context, in expense.NewRecord) (rec expense.Record, err error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "storage.Add")
	defer func() {
		finishSpan(span, err)
		observeOperation("add", err)
	}()

	if err = expense.ValidateAmount(in.Amount); err != nil {
		return expense.Record{}, errors.Wrap(err, "add expense")
	}
	category, err := expense.ParseCategory(in.Category)
	if err != nil {
		return expense.Record{}, errors.Wrapf(err, "add expense: %q", in.Category)
	}
	date, err := s.dateOrToday(in.Date)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "add expense")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec = expense.Record{
		ID:          s.lastID + 1,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    category,
		Date:        date,
		Timestamp:   s.now(),
	}

	records := append(cloneRecords(s.records), rec)
	if err = s.persist(records, rec.ID); err != nil {
		return expense.Record{}, errors.Wrap(err, "add expense")
	}
	s.commit(records, rec.ID)

	logger.Info("expense added",
		zap.Int64("id", rec.ID),
		zap.String("amount", rec.Amount.StringFixed(2)),
		zap.String("category", string(rec.Category)),
		zap.Stringer("date", rec.Date))
	return rec, nil
}

func (s *JSONStorage) Delete(ctx context.Context, id int64) (err error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "storage.Delete")
	span.SetTag("id", id)
	defer func() {
		finishSpan(span, err)
		observeOperation("delete", err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return errors.Wrapf(expense.ErrNotFound, "delete expense %d", id)
	}

	records := make([]expense.Record, 0, len(s.records)-1)
	records = append(records, s.records[:idx]...)
	records = append(records, s.records[idx+1:]...)
	if err = s.persist(records, s.lastID); err != nil {
		return errors.Wrapf(err, "delete expense %d", id)
	}
	s.commit(records, s.lastID)

	logger.Info("expense deleted", zap.Int64("id", id))
	return nil
}

// Edit applies every supplied field or none: all of them are validated
// before the record is touched.
func (s *JSONStorage) Edit(ctx context.Context, id int64, changes expense.Changes) (rec expense.Record, err error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "storage.Edit")
	span.SetTag("id", id)
	defer func() {
		finishSpan(span, err)
		observeOperation("edit", err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return expense.Record{}, errors.Wrapf(expense.ErrNotFound, "edit expense %d", id)
	}

	rec = s.records[idx]
	if changes.Amount != nil {
		if err = expense.ValidateAmount(*changes.Amount); err != nil {
			return expense.Record{}, errors.Wrapf(err, "edit expense %d", id)
		}
		rec.Amount = *changes.Amount
	}
	if changes.Category != nil {
		rec.Category, err = expense.ParseCategory(*changes.Category)
		if err != nil {
			return expense.Record{}, errors.Wrapf(err, "edit expense %d: %q", id, *changes.Category)
		}
	}
	if changes.Date != nil {
		rec.Date, err = expense.ParseDate(*changes.Date)
		if err != nil {
			return expense.Record{}, errors.Wrapf(err, "edit expense %d", id)
		}
	}
	if changes.Description != nil {
		rec.Description = *changes.Description
	}
	rec.Timestamp = s.now()

	records := cloneRecords(s.records)
	records[idx] = rec
	if err = s.persist(records, s.lastID); err != nil {
		return expense.Record{}, errors.Wrapf(err, "edit expense %d", id)
	}
	s.commit(records, s.lastID)

	logger.Info("expense updated", zap.Int64("id", id))
	return rec, nil
}

func (s *JSONStorage) Get(ctx context.Context, id int64) (expense.Record, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "storage.Get")
	defer span.Finish()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return expense.Record{}, errors.Wrapf(expense.ErrNotFound, "get expense %d", id)
	}
	return s.records[idx], nil
}

// Expenses returns a copy of every record in insertion order.
func (s *JSONStorage) Expenses(ctx context.Context) []expense.Record {
	span, _ := opentracing.StartSpanFromContext(ctx, "storage.Expenses")
	defer span.Finish()

	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneRecords(s.records)
}

func (s *JSONStorage) dateOrToday(raw string) (expense.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return expense.DateOf(s.now().In(s.loc)), nil
	}
	return expense.ParseDate(raw)
}

func (s *JSONStorage) indexOf(id int64) int {
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func (s *JSONStorage) commit(records []expense.Record, lastID int64) {
	s.records = records
	s.lastID = lastID
	recordsGauge.Set(float64(len(records)))
}

// persist writes the id counter and then the whole document. A counter
// left ahead of the document by a failed write only skips ids. Callers
// commit the new state only after it returns nil.
func (s *JSONStorage) persist(records []expense.Record, lastID int64) error {
	start := time.Now()
	defer func() { observePersist(time.Since(start)) }()

	if records == nil {
		records = []expense.Record{}
	}
	data, err := json.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return errors.Wrap(err, "encode expenses")
	}
	if err = writeFileAtomic(s.seqPath(), s.encodeSeq(lastID)); err != nil {
		logger.Error("failed to save id counter", zap.String("path", s.seqPath()), zap.Error(err))
		return errors.Wrap(err, "save id counter")
	}
	if err = writeFileAtomic(s.path, data); err != nil {
		logger.Error("failed to save expenses", zap.String("path", s.path), zap.Error(err))
		return errors.Wrap(err, "save expenses")
	}
	return nil
}

func (s *JSONStorage) seqPath() string {
	return s.path + seqSuffix
}

// encodeSeq renders the sidecar: the last id, then the epoch when set.
func (s *JSONStorage) encodeSeq(lastID int64) []byte {
	if s.epoch == 0 {
		return []byte(strconv.FormatInt(lastID, 10))
	}
	return []byte(fmt.Sprintf("%d %d", lastID, s.epoch))
}

func (s *JSONStorage) readSeq() (lastID, epoch int64) {
	raw, err := os.ReadFile(s.seqPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("cannot read id counter", zap.String("path", s.seqPath()), zap.Error(err))
		}
		return 0, 0
	}
	fields := strings.Fields(string(raw))
	if len(fields) == 0 || len(fields) > 2 {
		logger.Warn("ignoring malformed id counter", zap.String("path", s.seqPath()))
		return 0, 0
	}
	lastID, err = strconv.ParseInt(fields[0], 10, 64)
	if err != nil || lastID < 0 {
		logger.Warn("ignoring malformed id counter", zap.String("path", s.seqPath()))
		return 0, 0
	}
	if len(fields) == 2 {
		if epoch, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
			logger.Warn("ignoring malformed epoch", zap.String("path", s.seqPath()))
			epoch = 0
		}
	}
	return lastID, epoch
}

// quarantine keeps a corrupted document out of the way of the next write.
// Every quarantined copy gets its own name.
func (s *JSONStorage) quarantine() {
	dst := s.path + corruptSuffix + s.now().UTC().Format(corruptStamp)
	if err := os.Rename(s.path, dst); err != nil {
		logger.Warn("cannot move corrupted expenses file", zap.String("path", s.path), zap.Error(err))
		return
	}
	logger.Warn("corrupted expenses file moved", zap.String("to", dst))
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func cloneRecords(in []expense.Record) []expense.Record {
	if in == nil {
		return nil
	}
	out := make([]expense.Record, len(in))
	copy(out, in)
	return out
}

func finishSpan(span opentracing.Span, err error) {
	if err != nil {
		ext.Error.Set(span, true)
		span.LogKV("error", err.Error())
	}
	span.Finish()
}
