package server

import "net/http"

// handleExportStories streams the stories workbook.
func (s *Server) handleExportStories(w http.ResponseWriter, r *http.Request) {
	data, err := s.exporter.ExportStoriesXLSX(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="stories.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
