package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nerd/internal/auth"
	apperrors "nerd/internal/errors"
	"nerd/internal/events"
	"nerd/internal/model"
)

func TestUserService_Register(t *testing.T) {
	identity := auth.Identity{UID: "uid-1", Name: "Ada", Email: "ada@x.com", Avatar: "https://img/ada.png"}
	valid := RegistrationInput{Name: " Ada ", Gender: "female", DateOfBirth: "2001-02-03", College: "MIT", Phone: strPtr("  ")}

	tests := []struct {
		name          string
		input         RegistrationInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			input: valid,
			setupMock: func(m *MockUserRepository) {
				m.On("Exists", mock.Anything, "uid-1").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "user already exists",
			input: valid,
			setupMock: func(m *MockUserRepository) {
				m.On("Exists", mock.Anything, "uid-1").Return(true, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
		{
			name:  "concurrent registration loses the race",
			input: valid,
			setupMock: func(m *MockUserRepository) {
				m.On("Exists", mock.Anything, "uid-1").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrConflict)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
		{
			name:          "missing college",
			input:         RegistrationInput{Name: "Ada", Gender: "female", DateOfBirth: "2001-02-03"},
			setupMock:     func(*MockUserRepository) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:          "malformed date of birth",
			input:         RegistrationInput{Name: "Ada", Gender: "female", DateOfBirth: "03/02/2001", College: "MIT"},
			setupMock:     func(*MockUserRepository) {},
			expectedError: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			pub := &recordingPublisher{}
			svc := NewUserService(repo, nil, pub, zap.NewNop())

			user, err := svc.Register(context.Background(), identity, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.False(t, pub.saw(events.CollectionUsers, events.ActionCreated))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Ada", user.Name)
				assert.Equal(t, "ada@x.com", user.Email)
				assert.Equal(t, "https://img/ada.png", user.Avatar)
				assert.Nil(t, user.Phone)
				assert.True(t, pub.saw(events.CollectionUsers, events.ActionCreated))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetListDelete(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "uid-1").Return(&model.User{ID: "uid-1", Name: "Ada"}, nil)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
	repo.On("List", mock.Anything).Return([]model.User{{ID: "uid-1"}}, nil)
	repo.On("Delete", mock.Anything, "uid-1").Return(nil)
	pub := &recordingPublisher{}
	svc := NewUserService(repo, nil, pub, zap.NewNop())
	ctx := context.Background()

	user, err := svc.GetUser(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	_, err = svc.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, svc.DeleteUser(ctx, "uid-1"))
	assert.True(t, pub.saw(events.CollectionUsers, events.ActionDeleted))
	repo.AssertExpectations(t)
}
