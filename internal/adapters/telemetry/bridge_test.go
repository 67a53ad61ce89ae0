package telemetry_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fuse/internal/adapters/telemetry"
	"go.trai.ch/fuse/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogBridge_SuccessLogsDebug(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { got = msg })

	tp := telemetry.NewTracerProvider(log)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")
	_, span := tracer.Start(t.Context(), "dispatcher.merge")
	span.SetAttribute("fuse.mutation", "updateUser")
	span.End()

	assert.True(t, strings.HasPrefix(got, "dispatcher.merge took "), got)
	assert.Contains(t, got, "fuse.mutation=updateUser")
}

func TestLogBridge_FailureLogsDebugWithoutError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { got = msg })
	log.EXPECT().Warn(gomock.Any()).Times(0)

	tp := telemetry.NewTracerProvider(log)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")
	_, span := tracer.Start(t.Context(), "dispatcher.merge")
	span.SetAttribute("fuse.outcome", "failed")
	span.RecordError(errors.New("cannot merge two different mutations"))
	span.End()

	assert.True(t, strings.HasPrefix(got, "dispatcher.merge took "), got)
	assert.Contains(t, got, "fuse.outcome=failed")
	assert.True(t, strings.HasSuffix(got, " (failed)"), got)
	assert.NotContains(t, got, "cannot merge two different mutations")
}

func TestLogBridge_NilLogger(t *testing.T) {
	tp := telemetry.NewTracerProvider(nil)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	_, span := telemetry.NewOTelTracerWithProvider(tp, "test").Start(t.Context(), "quiet")
	span.End()
}
