package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiberops/subcore/internal/shared/logger"
)

type levelRecorder struct {
	logger.Interface
	levels []string
}

func (r *levelRecorder) Debugw(msg string, kv ...interface{}) { r.levels = append(r.levels, "debug") }
func (r *levelRecorder) Warnw(msg string, kv ...interface{})  { r.levels = append(r.levels, "warn") }
func (r *levelRecorder) Errorw(msg string, kv ...interface{}) { r.levels = append(r.levels, "error") }

func TestGormWriter_Levels(t *testing.T) {
	rec := &levelRecorder{Interface: logger.NewNopLogger()}
	w := &gormWriter{log: rec}

	w.Printf("%s [%.3fms] [rows:%v] %s", "/repo/x.go:10 SLOW SQL >= 200ms", 312.4, 1, "SELECT * FROM `sequence_locks` FOR UPDATE")
	w.Printf("%s %s", "/repo/x.go:12 Error 1213", "Deadlock found when trying to get lock")
	w.Printf("%s", "SELECT SCHEMA_NAME from Information_schema.SCHEMATA")
	w.Printf("%s", "SELECT VERSION()")
	w.Printf("%s", "[info] replacing callback")

	assert.Equal(t, []string{"warn", "error", "debug"}, rec.levels)
}
