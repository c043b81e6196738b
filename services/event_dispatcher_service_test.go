package services

import (
	"testing"

	"gg-note/ggnote/models"
	"gg-note/ggnote/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchPendingMarksEvents(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	folderService := &FolderService{}
	_, err := folderService.CreateFolder(db, "Inbox")
	require.NoError(t, err)
	_, err = folderService.CreateFolder(db, "Archive")
	require.NoError(t, err)

	dispatcher := NewEventDispatcherService(db)
	require.NoError(t, dispatcher.DispatchPending())

	var pending int64
	require.NoError(t, db.DB.Model(&models.Event{}).
		Where("dispatched = ?", false).Count(&pending).Error)
	assert.Zero(t, pending)

	var events []models.Event
	require.NoError(t, db.DB.Find(&events).Error)
	require.Len(t, events, 2)
	for _, event := range events {
		assert.True(t, event.Dispatched)
		assert.NotNil(t, event.DispatchedAt)
	}
}

func TestDispatchPendingIsIdempotent(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	_, err := (&FolderService{}).CreateFolder(db, "Once")
	require.NoError(t, err)

	dispatcher := NewEventDispatcherService(db)
	require.NoError(t, dispatcher.DispatchPending())
	require.NoError(t, dispatcher.DispatchPending())

	var dispatched int64
	require.NoError(t, db.DB.Model(&models.Event{}).
		Where("dispatched = ?", true).Count(&dispatched).Error)
	assert.Equal(t, int64(1), dispatched)
}

func TestDispatchPendingEmptyOutbox(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	dispatcher := NewEventDispatcherService(db)
	assert.NoError(t, dispatcher.DispatchPending())
}
