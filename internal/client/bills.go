package client

import (
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// BillsClient implements clio.BillsClient.
type BillsClient struct {
	*resourceClient[clio.Bill]
}

// NewBillsClient creates a bills client.
func NewBillsClient(httpClient *internalhttp.Client) *BillsClient {
	return &BillsClient{newResourceClient[clio.Bill](httpClient, "bills", "bill")}
}

// LineItemsClient implements clio.LineItemsClient.
type LineItemsClient struct {
	*resourceClient[clio.LineItem]
}

// NewLineItemsClient creates a line items client.
func NewLineItemsClient(httpClient *internalhttp.Client) *LineItemsClient {
	return &LineItemsClient{newResourceClient[clio.LineItem](httpClient, "line_items", "line item")}
}
