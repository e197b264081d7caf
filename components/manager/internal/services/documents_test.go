// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetDocumentByID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := batch.NewMockDocumentStore(ctrl)
	doc := &model.GeneratedDocument{ID: uuid.New(), Status: constant.DocumentStatusGenerated}

	store.EXPECT().Get(gomock.Any(), doc.ID).Return(doc, nil)

	got, err := (&UseCase{DocumentRepo: store}).GetDocumentByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDeleteDocumentByID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := batch.NewMockDocumentStore(ctrl)
	id := uuid.New()

	store.EXPECT().Delete(gomock.Any(), id).Return(nil)
	store.EXPECT().Delete(gomock.Any(), id).
		Return(pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionDocument))

	uc := &UseCase{DocumentRepo: store}

	require.NoError(t, uc.DeleteDocumentByID(context.Background(), id))

	err := uc.DeleteDocumentByID(context.Background(), id)
	require.Error(t, err)
	assert.IsType(t, pkg.EntityNotFoundError{}, err)
}

func TestGetDocumentsByBatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := batch.NewMockDocumentStore(ctrl)
	batchID := uuid.New()

	store.EXPECT().FindByBatch(gomock.Any(), batchID).Return(nil, nil)

	docs, err := (&UseCase{DocumentRepo: store}).GetDocumentsByBatch(context.Background(), batchID)
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestDownloadDocument(t *testing.T) {
	t.Parallel()

	withPDF := func() *model.GeneratedDocument {
		return &model.GeneratedDocument{
			ID:     uuid.New(),
			Status: constant.DocumentStatusGenerated,
			PdfURL: "documents/batch/doc.pdf",
		}
	}

	tests := []struct {
		name      string
		doc       *model.GeneratedDocument
		mockSetup func(st *storage.MockObjectStorage, doc *model.GeneratedDocument)
		wantErr   error
	}{
		{
			name: "Success - streams the PDF",
			doc:  withPDF(),
			mockSetup: func(st *storage.MockObjectStorage, doc *model.GeneratedDocument) {
				st.EXPECT().Download(gomock.Any(), doc.PdfURL).Return(io.NopCloser(strings.NewReader("%PDF-1.4")), nil)
			},
		},
		{
			name: "Error - email document has no PDF",
			doc: &model.GeneratedDocument{
				ID:     uuid.New(),
				Status: constant.DocumentStatusGenerated,
			},
			mockSetup: func(_ *storage.MockObjectStorage, _ *model.GeneratedDocument) {},
			wantErr:   constant.ErrDocumentWithoutPDF,
		},
		{
			name: "Error - failed document",
			doc: func() *model.GeneratedDocument {
				d := withPDF()
				d.Status = constant.DocumentStatusFailed

				return d
			}(),
			mockSetup: func(_ *storage.MockObjectStorage, _ *model.GeneratedDocument) {},
			wantErr:   constant.ErrDocumentWithoutPDF,
		},
		{
			name: "Error - object missing from storage",
			doc:  withPDF(),
			mockSetup: func(st *storage.MockObjectStorage, doc *model.GeneratedDocument) {
				st.EXPECT().Download(gomock.Any(), doc.PdfURL).Return(nil, storage.ErrObjectNotFound)
			},
			wantErr: constant.ErrEntityNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			store := batch.NewMockDocumentStore(ctrl)
			objects := storage.NewMockObjectStorage(ctrl)

			store.EXPECT().Get(gomock.Any(), tt.doc.ID).Return(tt.doc, nil)
			tt.mockSetup(objects, tt.doc)

			doc, body, err := (&UseCase{DocumentRepo: store, Storage: objects}).DownloadDocument(context.Background(), tt.doc.ID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, body)

				return
			}

			require.NoError(t, err)
			defer body.Close()

			content, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.4", string(content))
			assert.Equal(t, tt.doc.ID, doc.ID)
		})
	}
}
