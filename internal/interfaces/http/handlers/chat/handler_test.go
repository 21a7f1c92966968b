package chat

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatdto "github.com/ecoride/helpdesk/internal/application/chat/dto"
	"github.com/ecoride/helpdesk/internal/application/chat/usecases"
	"github.com/ecoride/helpdesk/internal/interfaces/http/handlers/testutil"
	"github.com/ecoride/helpdesk/internal/shared/authorization"
	"github.com/ecoride/helpdesk/internal/shared/errors"
)

type mockStartConversationUC struct {
	result *usecases.StartConversationResult
	err    error
}

func (m *mockStartConversationUC) Execute(_ context.Context, _ usecases.StartConversationCommand) (*usecases.StartConversationResult, error) {
	return m.result, m.err
}

type mockSendMessageUC struct {
	result  *chatdto.MessageDTO
	err     error
	lastCmd usecases.SendMessageCommand
}

func (m *mockSendMessageUC) Execute(_ context.Context, cmd usecases.SendMessageCommand) (*chatdto.MessageDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListConversationsUC struct {
	result []chatdto.ConversationDTO
	err    error
}

func (m *mockListConversationsUC) Execute(_ context.Context, _ usecases.ListConversationsQuery) ([]chatdto.ConversationDTO, error) {
	return m.result, m.err
}

type mockListMessagesUC struct {
	result    []chatdto.MessageDTO
	err       error
	lastQuery usecases.ListMessagesQuery
}

func (m *mockListMessagesUC) Execute(_ context.Context, query usecases.ListMessagesQuery) ([]chatdto.MessageDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

type testDeps struct {
	startConversationUC usecases.StartConversationExecutor
	sendMessageUC       usecases.SendMessageExecutor
	listConversationsUC usecases.ListConversationsExecutor
	listMessagesUC      usecases.ListMessagesExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(
		deps.startConversationUC,
		deps.sendMessageUC,
		deps.listConversationsUC,
		deps.listMessagesUC,
		testutil.NewMockLogger(),
	)
}

func TestHandler_StartConversation_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockStartConversationUC{
		result: &usecases.StartConversationResult{
			Conversation: chatdto.ConversationDTO{ID: 1, CustomerID: 7, Title: "New Conversation", CreatedAt: now, UpdatedAt: now},
			Welcome:      chatdto.MessageDTO{ID: 1, ConversationID: 1, Sender: "system", Text: "Hello!", CreatedAt: now},
		},
	}
	handler := newTestHandler(testDeps{startConversationUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/conversations", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleCustomer)

	handler.StartConversation(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "New Conversation")
}

func TestHandler_SendMessage_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockSendMessageUC{
		result: &chatdto.MessageDTO{ID: 10, ConversationID: 3, Sender: "customer", Text: "my bike won't unlock", CreatedAt: now},
	}
	handler := newTestHandler(testDeps{sendMessageUC: mockUC})

	reqBody := SendMessageRequest{Text: "my bike won't unlock"}
	c, w := testutil.NewTestContext(http.MethodPost, "/conversations/3/messages", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleCustomer)
	testutil.SetURLParam(c, "id", "3")

	handler.SendMessage(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), mockUC.lastCmd.ConversationID)
	assert.Equal(t, uint(7), mockUC.lastCmd.CustomerID)
	assert.Equal(t, "my bike won't unlock", mockUC.lastCmd.Text)
}

func TestHandler_SendMessage_WithAttachment(t *testing.T) {
	mockUC := &mockSendMessageUC{
		result: &chatdto.MessageDTO{ID: 11, ConversationID: 3, Sender: "customer", Text: "Uploaded file: receipt.pdf"},
	}
	handler := newTestHandler(testDeps{sendMessageUC: mockUC})

	reqBody := SendMessageRequest{
		Attachment: &AttachmentRequest{FileName: "receipt.pdf", FileURL: "https://cdn.example.com/receipt.pdf"},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/conversations/3/messages", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleCustomer)
	testutil.SetURLParam(c, "id", "3")

	handler.SendMessage(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.lastCmd.Attachment)
	assert.Equal(t, "receipt.pdf", mockUC.lastCmd.Attachment.FileName)
}

func TestHandler_SendMessage_Forbidden(t *testing.T) {
	mockUC := &mockSendMessageUC{err: errors.NewForbiddenError("conversation belongs to another customer")}
	handler := newTestHandler(testDeps{sendMessageUC: mockUC})

	reqBody := SendMessageRequest{Text: "hello"}
	c, w := testutil.NewTestContext(http.MethodPost, "/conversations/3/messages", reqBody)
	testutil.SetAuthContext(c, 8, authorization.RoleCustomer)
	testutil.SetURLParam(c, "id", "3")

	handler.SendMessage(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListConversations_Success(t *testing.T) {
	mockUC := &mockListConversationsUC{
		result: []chatdto.ConversationDTO{{ID: 1, CustomerID: 7, Title: "Billing question"}},
	}
	handler := newTestHandler(testDeps{listConversationsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/conversations", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleCustomer)

	handler.ListConversations(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListMessages_AdminFlag(t *testing.T) {
	mockUC := &mockListMessagesUC{result: []chatdto.MessageDTO{}}
	handler := newTestHandler(testDeps{listMessagesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/conversations/5/messages", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "5")

	handler.ListMessages(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastQuery.IsAdmin)
	assert.Equal(t, uint(5), mockUC.lastQuery.ConversationID)
}

func TestHandler_ListMessages_NotFound(t *testing.T) {
	mockUC := &mockListMessagesUC{err: errors.NewNotFoundError("conversation not found")}
	handler := newTestHandler(testDeps{listMessagesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/conversations/99/messages", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleCustomer)
	testutil.SetURLParam(c, "id", "99")

	handler.ListMessages(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
