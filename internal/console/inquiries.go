package console

import (
	"context"
	"log"

	"realty/internal/client"
	"realty/internal/model"
)

// maxMessageWidth truncates inquiry messages in the table
const maxMessageWidth = 48

// LoadInquiries fetches inquiries, newest first
func (c *Console) LoadInquiries(ctx context.Context, filter model.InquiryFilter) Page[[]model.Inquiry] {
	return Load(ctx, func(ctx context.Context) ([]model.Inquiry, error) {
		return c.api.Inquiries.List(ctx, client.BuildInquiryQuery(filter))
	}, loading[[]model.Inquiry](c, "inquiries"))
}

// RenderInquiries prints the inquiry management page
func (c *Console) RenderInquiries(page Page[[]model.Inquiry]) {
	c.heading("Inquiries", "Manage customer inquiries and requests")

	if page.State == Failed {
		log.Printf("Error loading inquiries: %v", page.Err)
	}
	if len(page.Data) == 0 {
		c.printf("No inquiries found\nCustomer inquiries will appear here\n")
		return
	}

	rows := make([][]string, 0, len(page.Data))
	for _, i := range page.Data {
		rows = append(rows, []string{
			i.ID,
			FormatDate(i.CreatedAt),
			i.PropertyID,
			i.UserID,
			truncate(i.Message, maxMessageWidth),
			i.Status,
		})
	}
	c.table([]string{"ID", "DATE", "PROPERTY ID", "USER ID", "MESSAGE", "STATUS"}, rows)
}

// UpdateInquiryStatus changes one inquiry's status and reloads the list.
// A failed update is logged and the list is shown unchanged.
func (c *Console) UpdateInquiryStatus(ctx context.Context, id, status string) Page[[]model.Inquiry] {
	if _, err := c.workflow.SetStatus(ctx, id, status); err != nil {
		log.Printf("Error updating inquiry: %v", err)
	}
	return c.LoadInquiries(ctx, model.InquiryFilter{})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
