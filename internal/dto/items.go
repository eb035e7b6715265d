package dto

import (
	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// SaveItemsRequest creates or replaces the item-group document of a note.
type SaveItemsRequest struct {
	TransactionID string            `json:"transaction_id" binding:"required"`
	Items         []NoteItemPayload `json:"items" binding:"required"`
}

// UpdateItemsRequest replaces the item-group document of a note.
type UpdateItemsRequest struct {
	Items []NoteItemPayload `json:"items" binding:"required"`
}

// ItemGroupResponse is the wire form of the item-group document.
type ItemGroupResponse struct {
	ItemGroupID   int64              `json:"item_group_id"`
	TransactionID string             `json:"transaction_id"`
	Items         []NoteItemResponse `json:"items"`
}

// ToItemGroupResponse converts a domain.ItemGroup to its wire form.
func ToItemGroupResponse(g *domain.ItemGroup) ItemGroupResponse {
	return ItemGroupResponse{
		ItemGroupID:   g.ItemGroupID,
		TransactionID: g.TransactionID,
		Items:         ToNoteItemResponses(g.Items),
	}
}
