package planting

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/mamadbah2/plantio/internal/domain/models"
	"github.com/mamadbah2/plantio/internal/export"
	"github.com/mamadbah2/plantio/internal/repository/memory"
)

const (
	// MessageSaved is shown after a record is stored.
	MessageSaved = "✅ Registro salvo com sucesso!"
	// MessageInvalid is shown when a submission is rejected.
	MessageInvalid = "⚠️ Preencha todos os campos corretamente!"
)

// MessageKind tells the host how to style the status message.
type MessageKind string

const (
	// MessageNone means no submission has happened yet.
	MessageNone MessageKind = ""
	// MessageSuccess accompanies MessageSaved.
	MessageSuccess MessageKind = "success"
	// MessageError accompanies MessageInvalid.
	MessageError MessageKind = "error"
)

// Controller is the command surface a host invokes on user events.
type Controller interface {
	OnSubmit(raw models.RawFormInput) SubmitResult
	OnExport() ExportFile
	Dashboard() Dashboard
	Records() []models.PlantingRecord
}

// SubmitResult reports the outcome of a form submission.
type SubmitResult struct {
	Record      *models.PlantingRecord `json:"record,omitempty"`
	Message     string                 `json:"message"`
	Kind        MessageKind            `json:"kind"`
	ClearInputs bool                   `json:"clear_inputs"`
	Err         error                  `json:"-"`
}

// ExportFile is a rendered CSV export ready to hand to the user.
type ExportFile struct {
	FileName string
	Content  string
}

// Service owns the session state: the record store and the status message.
type Service struct {
	mu      sync.Mutex
	store   *memory.RecordStore
	message string
	kind    MessageKind
	logger  *zap.Logger
}

// NewService wires a controller around the given store.
func NewService(store *memory.RecordStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = memory.NewRecordStore()
	}
	return &Service{store: store, logger: logger}
}

// OnSubmit validates the form, stores the record and re-sorts the list.
// A rejected submission leaves the store untouched. A record that would push
// the running totals past the float range is rejected too.
func (s *Service) OnSubmit(raw models.RawFormInput) SubmitResult {
	record, err := models.ValidateForm(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil && !s.totalsFiniteWith(record) {
		err = models.ErrInvalidInput
	}

	if err != nil {
		s.message, s.kind = MessageInvalid, MessageError
		s.logger.Info("planting submission rejected", zap.Error(err))
		return SubmitResult{Message: s.message, Kind: s.kind, Err: err}
	}

	s.store.Insert(record)
	s.store.SortByDateDescending()
	s.message, s.kind = MessageSaved, MessageSuccess

	s.logger.Info("planting record saved",
		zap.String("crop", record.Crop),
		zap.Float64("area_ha", record.AreaHectares),
		zap.String("date", record.DateText),
		zap.Float64("total_profit", record.TotalProfit),
		zap.Int("records", s.store.Len()))

	return SubmitResult{Record: &record, Message: s.message, Kind: s.kind, ClearInputs: true}
}

func (s *Service) totalsFiniteWith(record models.PlantingRecord) bool {
	totals := models.Aggregate(append(s.store.All(), record))
	return !math.IsInf(totals.TotalArea, 0) && !math.IsNaN(totals.TotalArea) &&
		!math.IsInf(totals.TotalProfit, 0) && !math.IsNaN(totals.TotalProfit)
}

// OnExport renders every record, in the current list order, as CSV.
func (s *Service) OnExport() ExportFile {
	records := s.Records()
	s.logger.Debug("export rendered", zap.Int("records", len(records)))
	return ExportFile{FileName: export.FileName, Content: export.ToCSV(records)}
}

// Records returns a snapshot of the stored records in display order.
func (s *Service) Records() []models.PlantingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.All()
}

// Dashboard renders the display surface from the current state. Totals are
// recomputed on every call.
func (s *Service) Dashboard() Dashboard {
	s.mu.Lock()
	records := s.store.All()
	message, kind := s.message, s.kind
	s.mu.Unlock()

	return buildDashboard(message, kind, records)
}
