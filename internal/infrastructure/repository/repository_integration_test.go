package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/domain/query"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.KnowledgeEntryModel{},
		&models.ConversationModel{},
		&models.MessageModel{},
		&models.QueryModel{},
		&models.ProfileModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestEntry(t *testing.T, question, answer, category string) *knowledge.Entry {
	entry, err := knowledge.NewEntry(question, answer, category)
	require.NoError(t, err)
	return entry
}

func TestKnowledgeRepository_FindActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKnowledgeRepository(db)
	ctx := context.Background()

	t.Run("returns entries in creation order", func(t *testing.T) {
		first := createTestEntry(t, "How do I unlock a scooter?", "Scan the QR code.", "riding")
		second := createTestEntry(t, "How do I pay?", "Add a card in the app.", "billing")
		third := createTestEntry(t, "Battery empty?", "Swap at a station.", "riding")

		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))
		require.NoError(t, repo.Save(ctx, third))

		entries, err := repo.FindActive(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, first.ID(), entries[0].ID())
		assert.Equal(t, second.ID(), entries[1].ID())
		assert.Equal(t, third.ID(), entries[2].ID())
	})

	t.Run("excludes deactivated entries", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewKnowledgeRepository(db)

		active := createTestEntry(t, "Active question here", "Answer.", "")
		inactive := createTestEntry(t, "Retired question here", "Answer.", "")
		require.NoError(t, repo.Save(ctx, active))
		require.NoError(t, repo.Save(ctx, inactive))

		inactive.SetActive(false)
		require.NoError(t, repo.Update(ctx, inactive))

		entries, err := repo.FindActive(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, active.ID(), entries[0].ID())
	})
}

func TestKnowledgeRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKnowledgeRepository(db)
	ctx := context.Background()

	riding := createTestEntry(t, "Where can I ride?", "Inside the service area.", "riding")
	uncategorized := createTestEntry(t, "Contact support?", "Use this portal.", "")
	billing := createTestEntry(t, "Refund policy?", "Within 14 days.", "billing")

	require.NoError(t, repo.Save(ctx, riding))
	require.NoError(t, repo.Save(ctx, uncategorized))
	require.NoError(t, repo.Save(ctx, billing))

	entries, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Category ascending puts the empty (uncategorized) label first, then
	// billing, then riding.
	assert.Equal(t, uncategorized.ID(), entries[0].ID())
	assert.Equal(t, billing.ID(), entries[1].ID())
	assert.Equal(t, riding.ID(), entries[2].ID())
}

func TestKnowledgeRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKnowledgeRepository(db)
	ctx := context.Background()

	battery := createTestEntry(t, "Battery swap stations?", "See the map.", "riding")
	payment := createTestEntry(t, "Payment methods?", "Card or wallet.", "billing")
	require.NoError(t, repo.Save(ctx, battery))
	require.NoError(t, repo.Save(ctx, payment))

	t.Run("search matches question case-insensitively", func(t *testing.T) {
		entries, err := repo.List(ctx, knowledge.ListFilter{Search: "BATTERY"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, battery.ID(), entries[0].ID())
	})

	t.Run("empty search returns everything", func(t *testing.T) {
		entries, err := repo.List(ctx, knowledge.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		err := repo.Delete(ctx, payment.ID())
		require.NoError(t, err)

		_, err = repo.GetByID(ctx, payment.ID())
		assert.ErrorIs(t, err, knowledge.ErrNotFound)
	})

	t.Run("delete of missing entry reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assert.ErrorIs(t, err, knowledge.ErrNotFound)
	})
}

func TestConversationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	ctx := context.Background()

	t.Run("save assigns an ID", func(t *testing.T) {
		conv, err := chat.NewConversation(1, chat.DefaultTitle)
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, conv))
		assert.NotZero(t, conv.ID())
	})

	t.Run("get by id returns not found for missing conversation", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, chat.ErrNotFound)
	})

	t.Run("list by customer is most recently active first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewConversationRepository(db)

		// Seed rows with explicit timestamps so the ordering is deterministic.
		rows := []models.ConversationModel{
			{CustomerID: 7, Title: "Oldest", CreatedAt: 1000, UpdatedAt: 1000},
			{CustomerID: 7, Title: "Newest", CreatedAt: 2000, UpdatedAt: 5000},
			{CustomerID: 7, Title: "Middle", CreatedAt: 3000, UpdatedAt: 3000},
			{CustomerID: 8, Title: "Other customer", CreatedAt: 4000, UpdatedAt: 9000},
		}
		for i := range rows {
			require.NoError(t, db.Create(&rows[i]).Error)
		}

		conversations, err := repo.ListByCustomer(ctx, 7)
		require.NoError(t, err)
		require.Len(t, conversations, 3)
		assert.Equal(t, "Newest", conversations[0].Title())
		assert.Equal(t, "Middle", conversations[1].Title())
		assert.Equal(t, "Oldest", conversations[2].Title())
	})

	t.Run("update persists the renamed title", func(t *testing.T) {
		conv, err := chat.NewConversation(2, chat.DefaultTitle)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, conv))

		renamed := conv.RenameFromFirstMessage("My scooter will not start", chat.DefaultTitle)
		require.True(t, renamed)
		require.NoError(t, repo.Update(ctx, conv))

		found, err := repo.GetByID(ctx, conv.ID())
		require.NoError(t, err)
		assert.Equal(t, "My scooter will not start", found.Title())
	})
}

func TestMessageRepository_ListByConversation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	t.Run("identical timestamps keep insertion order", func(t *testing.T) {
		fileName := "receipt.pdf"
		fileURL := "/uploads/receipt.pdf"
		rows := []models.MessageModel{
			{ConversationID: 1, SenderType: "customer", MessageText: "first", CreatedAt: 1000},
			{ConversationID: 1, SenderType: "system", MessageText: "second", CreatedAt: 1000},
			{ConversationID: 1, SenderType: "customer", MessageText: "third", CreatedAt: 1000, FileName: &fileName, FileURL: &fileURL},
			{ConversationID: 2, SenderType: "customer", MessageText: "elsewhere", CreatedAt: 500},
		}
		for i := range rows {
			require.NoError(t, db.Create(&rows[i]).Error)
		}

		messages, err := repo.ListByConversation(ctx, 1)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "first", messages[0].Text())
		assert.Equal(t, "second", messages[1].Text())
		assert.Equal(t, "third", messages[2].Text())

		require.NotNil(t, messages[2].Attachment())
		assert.Equal(t, "receipt.pdf", messages[2].Attachment().FileName)

		// Re-fetching without an intervening append yields identical output.
		again, err := repo.ListByConversation(ctx, 1)
		require.NoError(t, err)
		require.Len(t, again, 3)
		for i := range messages {
			assert.Equal(t, messages[i].ID(), again[i].ID())
		}
	})

	t.Run("save round-trips an attachment", func(t *testing.T) {
		msg, err := chat.NewMessage(3, chat.SenderCustomer, "Uploaded file: crash.log", &chat.Attachment{
			FileName: "crash.log",
			FileURL:  "/uploads/crash.log",
		})
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, msg))
		assert.NotZero(t, msg.ID())

		messages, err := repo.ListByConversation(ctx, 3)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		require.NotNil(t, messages[0].Attachment())
		assert.Equal(t, "/uploads/crash.log", messages[0].Attachment().FileURL)
	})
}

func createTestQuery(t *testing.T, repo *QueryRepository, customerID uint, text, number string) *query.Query {
	q, err := query.NewQuery(customerID, text, nil)
	require.NoError(t, err)
	require.NoError(t, q.SetNumber(number))
	require.NoError(t, repo.Save(context.Background(), q))
	return q
}

func TestQueryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQueryRepository(db)
	ctx := context.Background()

	t.Run("persists a response", func(t *testing.T) {
		q := createTestQuery(t, repo, 1, "Where is my refund?", "Q-20260901-0001")

		require.NoError(t, q.Respond("It was issued this morning."))
		require.NoError(t, repo.Update(ctx, q))

		found, err := repo.GetByID(ctx, q.ID())
		require.NoError(t, err)
		require.NotNil(t, found.ResponseText())
		assert.Equal(t, "It was issued this morning.", *found.ResponseText())
		assert.True(t, found.Status().IsAnswered())
		assert.Equal(t, 2, found.Version())
	})

	t.Run("concurrent update loses with version conflict", func(t *testing.T) {
		q := createTestQuery(t, repo, 1, "App keeps crashing on login", "Q-20260901-0002")

		first, err := repo.GetByID(ctx, q.ID())
		require.NoError(t, err)
		second, err := repo.GetByID(ctx, q.ID())
		require.NoError(t, err)

		require.NoError(t, first.Respond("Please update the app."))
		require.NoError(t, repo.Update(ctx, first))

		require.NoError(t, second.Respond("Try reinstalling."))
		err = repo.Update(ctx, second)
		assert.ErrorIs(t, err, query.ErrVersionConflict)

		// The winner's response is the one on record.
		found, err := repo.GetByID(ctx, q.ID())
		require.NoError(t, err)
		assert.Equal(t, "Please update the app.", *found.ResponseText())
	})

	t.Run("missing query reports not found", func(t *testing.T) {
		q, err := query.NewQuery(1, "ghost", nil)
		require.NoError(t, err)
		require.NoError(t, q.SetNumber("Q-20260901-9999"))
		require.NoError(t, q.SetID(424242))

		require.NoError(t, q.Respond("nobody home"))
		err = repo.Update(ctx, q)
		assert.ErrorIs(t, err, query.ErrNotFound)
	})
}

func TestQueryRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQueryRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.ProfileModel{UserID: 10, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}).Error)
	require.NoError(t, db.Create(&models.ProfileModel{UserID: 11, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}).Error)

	adaQuery := createTestQuery(t, repo, 10, "Helmet was missing from the box", "Q-20260901-0101")
	graceQuery := createTestQuery(t, repo, 11, "Charging cable question", "Q-20260901-0102")

	require.NoError(t, graceQuery.Respond("We shipped a replacement."))
	require.NoError(t, repo.Update(ctx, graceQuery))

	t.Run("filters by customer", func(t *testing.T) {
		queries, total, err := repo.List(ctx, query.Filter{CustomerID: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, queries, 1)
		assert.Equal(t, adaQuery.ID(), queries[0].ID())
	})

	t.Run("filters by status", func(t *testing.T) {
		answered := query.Filter{}
		status := graceQuery.Status()
		answered.Status = &status

		queries, total, err := repo.List(ctx, answered)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, queries, 1)
		assert.Equal(t, graceQuery.ID(), queries[0].ID())
	})

	t.Run("search matches customer name via profile", func(t *testing.T) {
		queries, total, err := repo.List(ctx, query.Filter{Search: "lovelace"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, queries, 1)
		assert.Equal(t, adaQuery.ID(), queries[0].ID())
	})

	t.Run("search matches response text", func(t *testing.T) {
		queries, _, err := repo.List(ctx, query.Filter{Search: "replacement"})
		require.NoError(t, err)
		require.Len(t, queries, 1)
		assert.Equal(t, graceQuery.ID(), queries[0].ID())
	})

	t.Run("pagination returns total before slicing", func(t *testing.T) {
		queries, total, err := repo.List(ctx, query.Filter{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, queries, 1)
	})
}
