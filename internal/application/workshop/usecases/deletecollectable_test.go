package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

func testSnippet(t *testing.T, id, collectionID, name string) *workshop.Snippet {
	t.Helper()
	s, err := workshop.ReconstructSnippet(id, collectionID, name, "", "echo hi", nil, nil)
	require.NoError(t, err)
	return s
}

func newDeleteAliasFixture() (*DeleteAliasUseCase, *mockCollectionRepository, *mockAliasRepository, *mockSubscriptionRepository, *mockCollectionIndex) {
	collectionRepo := new(mockCollectionRepository)
	aliasRepo := new(mockAliasRepository)
	subRepo := new(mockSubscriptionRepository)
	index := new(mockCollectionIndex)

	uc := NewDeleteAliasUseCase(collectionRepo, aliasRepo, subRepo, index, logger.NewLogger())
	return uc, collectionRepo, aliasRepo, subRepo, index
}

func TestDeleteAliasUseCase_RootOfPublishedCollectionForbidden(t *testing.T) {
	uc, collectionRepo, aliasRepo, _, _ := newDeleteAliasFixture()

	alias := testRootAlias(t, "als_1", "col_1", "foo")
	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil)
	aliasRepo.On("FindByID", mock.Anything, "als_1").Return(alias, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)

	err := uc.Execute(context.Background(), "als_1", Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	aliasRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteAliasUseCase_ModeratorBypassesPublishedGuard(t *testing.T) {
	uc, collectionRepo, aliasRepo, subRepo, index := newDeleteAliasFixture()

	alias := testRootAlias(t, "als_1", "col_1", "foo")
	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil)
	aliasRepo.On("FindByID", mock.Anything, "als_1").Return(alias, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	aliasRepo.On("Delete", mock.Anything, "als_1").Return(nil)
	subRepo.On("RemoveBinding", mock.Anything, "col_1", workshop.BindingKindAlias, "als_1").Return(nil)
	collectionRepo.On("Update", mock.Anything, collection).Return(nil)
	index.On("Index", mock.Anything, mock.Anything).Return(nil).Maybe()

	err := uc.Execute(context.Background(), "als_1", Actor{UserID: 7, Moderator: true})
	require.NoError(t, err)
	aliasRepo.AssertCalled(t, "Delete", mock.Anything, "als_1")
}

func TestDeleteAliasUseCase_SubAliasOfPublishedCollectionAllowed(t *testing.T) {
	uc, collectionRepo, aliasRepo, subRepo, index := newDeleteAliasFixture()

	parentID := "als_1"
	sub, err := workshop.ReconstructAlias("als_2", "col_1", "sub", "", "echo hi", nil, nil, &parentID, nil)
	require.NoError(t, err)
	parent := testRootAlias(t, "als_1", "col_1", "foo")
	parent.AttachSubcommand("als_2")
	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil)

	aliasRepo.On("FindByID", mock.Anything, "als_2").Return(sub, nil)
	aliasRepo.On("FindByID", mock.Anything, "als_1").Return(parent, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	aliasRepo.On("Delete", mock.Anything, "als_2").Return(nil)
	aliasRepo.On("Update", mock.Anything, parent).Return(nil)
	collectionRepo.On("Update", mock.Anything, collection).Return(nil)
	index.On("Index", mock.Anything, mock.Anything).Return(nil).Maybe()

	err = uc.Execute(context.Background(), "als_2", Actor{UserID: 100})
	require.NoError(t, err)
	assert.NotContains(t, parent.SubcommandIDs(), "als_2")
	subRepo.AssertNotCalled(t, "RemoveBinding", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteAliasUseCase_PrivateCollectionAllowed(t *testing.T) {
	uc, collectionRepo, aliasRepo, subRepo, index := newDeleteAliasFixture()

	alias := testRootAlias(t, "als_1", "col_1", "foo")
	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, []string{"als_1"}, nil)
	aliasRepo.On("FindByID", mock.Anything, "als_1").Return(alias, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	aliasRepo.On("Delete", mock.Anything, "als_1").Return(nil)
	subRepo.On("RemoveBinding", mock.Anything, "col_1", workshop.BindingKindAlias, "als_1").Return(nil)
	collectionRepo.On("Update", mock.Anything, collection).Return(nil)
	index.On("Index", mock.Anything, mock.Anything).Return(nil).Maybe()

	err := uc.Execute(context.Background(), "als_1", Actor{UserID: 100})
	require.NoError(t, err)
	assert.NotContains(t, collection.AliasIDs(), "als_1")
}

func TestDeleteSnippetUseCase_PublishedCollectionForbidden(t *testing.T) {
	collectionRepo := new(mockCollectionRepository)
	snippetRepo := new(mockSnippetRepository)
	subRepo := new(mockSubscriptionRepository)
	index := new(mockCollectionIndex)
	uc := NewDeleteSnippetUseCase(collectionRepo, snippetRepo, subRepo, index, logger.NewLogger())

	snippet := testSnippet(t, "snp_1", "col_1", "hb")
	collection := testCollection(t, "col_1", 100, workshop.StatePublished, nil, []string{"snp_1"})
	snippetRepo.On("FindByID", mock.Anything, "snp_1").Return(snippet, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)

	err := uc.Execute(context.Background(), "snp_1", Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	snippetRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
