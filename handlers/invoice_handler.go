package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"fleetlink/repository"
	"fleetlink/utils"
)

type InvoiceHandler struct {
	Repo     repository.OrderRepository
	SavePath string
}

// OrderInvoice generates the invoice PDF for an order, saves a local copy and
// streams the PDF back. When R2 is configured the PDF is mirrored there too.
func (h *InvoiceHandler) OrderInvoice(w http.ResponseWriter, r *http.Request, id string) {
	order, err := h.Repo.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}
		writeError(w, err)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create save directory: " + err.Error(),
		})
		return
	}

	pdfBytes, err := utils.GenerateInvoicePDF(order)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to generate PDF: " + err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("invoice_%s_%d.pdf", order.ID, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save PDF: " + err.Error(),
		})
		return
	}

	if utils.R2Configured() {
		if _, err := utils.UploadToR2(pdfBytes, "invoices", filename, "application/pdf"); err != nil {
			// Keep serving the PDF even when the mirror upload fails.
			fmt.Printf("failed to mirror invoice %s to R2: %v\n", filename, err)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
