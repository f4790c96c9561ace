package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
	"github.com/invicta-fest/festival-backend/internal/event"
)

// ---- fakes ----

type fakeRepo struct {
	nextID uint
	regs   map[uint]*Registration
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, regs: map[uint]*Registration{}}
}

func (f *fakeRepo) Create(_ context.Context, reg *Registration) error {
	reg.ID = f.nextID
	f.nextID++
	reg.CreatedAt = time.Now()
	stored := *reg
	f.regs[reg.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*Registration, error) {
	reg, ok := f.regs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *reg
	return &out, nil
}

func (f *fakeRepo) ListWithEvent(_ context.Context, _ ListFilter) ([]WithEvent, error) {
	var rows []WithEvent
	for _, reg := range f.regs {
		rows = append(rows, WithEvent{Registration: *reg})
	}
	return rows, nil
}

func (f *fakeRepo) UpdatePayment(_ context.Context, id uint, status string, feePaid int) error {
	reg, ok := f.regs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	reg.PaymentStatus = status
	reg.FeePaid = feePaid
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.regs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.regs, id)
	return nil
}

func (f *fakeRepo) CountByEvent(_ context.Context, eventID uint) (int64, error) {
	var n int64
	for _, reg := range f.regs {
		if reg.EventID == eventID {
			n++
		}
	}
	return n, nil
}

type fakeEvents struct {
	events map[uint]*event.Event
}

func (f *fakeEvents) GetByID(id uint) (*event.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *ev
	return &out, nil
}

type auditStub struct{}

func (auditStub) LogAction(context.Context, *uint, string, map[string]interface{}, string, string) error {
	return nil
}

func (auditStub) GetAuditLogs(context.Context, auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}

func (auditStub) GetAuditLogByID(context.Context, uint) (*auditlog.AuditLog, error) {
	return nil, nil
}

type recordingPublisher struct {
	msgs []SubmittedMessage
}

func (p *recordingPublisher) PublishRegistration(_ context.Context, msg SubmittedMessage) error {
	p.msgs = append(p.msgs, msg)
	return nil
}

func newTestService(events map[uint]*event.Event) (Service, *fakeRepo, *recordingPublisher) {
	repo := newFakeRepo()
	pub := &recordingPublisher{}
	svc := NewService(repo, &fakeEvents{events: events}, auditStub{}, pub)
	return svc, repo, pub
}

func hackDay() *event.Event {
	return &event.Event{
		ID:               1,
		Name:             "Hack Day",
		Department:       "cse",
		Fee:              100,
		TeamSize:         "2-4 members",
		RegistrationOpen: true,
	}
}

func soloEvent() *event.Event {
	return &event.Event{
		ID:               2,
		Name:             "Elocution",
		Department:       "general",
		Fee:              0,
		TeamSize:         "Individual",
		RegistrationOpen: true,
	}
}

func validTeamRequest() SubmitRequest {
	return SubmitRequest{
		EventID:    1,
		Name:       "Asha",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		College:    "NIT",
		Department: "cse",
		Year:       "3",
		TeamName:   "Alpha",
		TeamMembers: []TeamMember{
			{Name: "Ravi"},
		},
	}
}

// ---- tests ----

func TestSubmitCreatesPendingRegistration(t *testing.T) {
	svc, repo, pub := newTestService(map[uint]*event.Event{1: hackDay()})

	reg, err := svc.Submit(context.Background(), validTeamRequest(), "1.2.3.4")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if reg.PaymentStatus != StatusPending {
		t.Errorf("payment status = %q, want pending", reg.PaymentStatus)
	}
	if reg.FeePaid != 0 {
		t.Errorf("fee paid = %d, want 0", reg.FeePaid)
	}
	if reg.FeeDue != 100 {
		t.Errorf("fee due = %d, want 100 (snapshot of event fee)", reg.FeeDue)
	}
	if reg.ReceiptNo == "" {
		t.Error("receipt number not assigned")
	}
	if len(repo.regs) != 1 {
		t.Errorf("stored %d registrations, want exactly 1", len(repo.regs))
	}
	if len(pub.msgs) != 1 || pub.msgs[0].EventName != "Hack Day" {
		t.Errorf("expected one published message for Hack Day, got %+v", pub.msgs)
	}
}

func TestSubmitRejectsTeamWithoutTeamName(t *testing.T) {
	svc, repo, _ := newTestService(map[uint]*event.Event{1: hackDay()})

	req := validTeamRequest()
	req.TeamName = "  "

	_, err := svc.Submit(context.Background(), req, "")
	if !errors.Is(err, ErrTeamNameRequired) {
		t.Fatalf("err = %v, want ErrTeamNameRequired", err)
	}
	if len(repo.regs) != 0 {
		t.Error("rejected submission must not create a record")
	}
}

func TestSubmitEnforcesTeamSizeBounds(t *testing.T) {
	svc, repo, _ := newTestService(map[uint]*event.Event{1: hackDay()})

	// 1 + 0 members = 1 participant, below the 2-4 bound
	req := validTeamRequest()
	req.TeamMembers = nil
	req.TeamName = ""
	if _, err := svc.Submit(context.Background(), req, ""); !errors.Is(err, ErrTeamSizeOutOfRange) {
		t.Errorf("solo entry to a 2-4 event: err = %v, want ErrTeamSizeOutOfRange", err)
	}

	// 1 + 4 members = 5 participants, above the bound
	req = validTeamRequest()
	req.TeamMembers = []TeamMember{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}
	if _, err := svc.Submit(context.Background(), req, ""); !errors.Is(err, ErrTeamSizeOutOfRange) {
		t.Errorf("oversized team: err = %v, want ErrTeamSizeOutOfRange", err)
	}

	if len(repo.regs) != 0 {
		t.Error("out-of-bound submissions must not create records")
	}
}

func TestSubmitRejectsClosedEvent(t *testing.T) {
	closed := hackDay()
	closed.RegistrationOpen = false
	svc, _, _ := newTestService(map[uint]*event.Event{1: closed})

	if _, err := svc.Submit(context.Background(), validTeamRequest(), ""); !errors.Is(err, ErrRegistrationClosed) {
		t.Fatalf("err = %v, want ErrRegistrationClosed", err)
	}
}

func TestSubmitRejectsPastDeadline(t *testing.T) {
	ev := hackDay()
	past := time.Now().Add(-48 * time.Hour)
	ev.RegistrationDeadline = &past
	svc, _, _ := newTestService(map[uint]*event.Event{1: ev})

	if _, err := svc.Submit(context.Background(), validTeamRequest(), ""); !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("err = %v, want ErrDeadlinePassed", err)
	}
}

func TestSubmitRejectsUnknownEvent(t *testing.T) {
	svc, _, _ := newTestService(map[uint]*event.Event{})

	if _, err := svc.Submit(context.Background(), validTeamRequest(), ""); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("err = %v, want ErrEventNotFound", err)
	}
}

func TestSubmitIndividualEvent(t *testing.T) {
	svc, _, _ := newTestService(map[uint]*event.Event{2: soloEvent()})

	req := SubmitRequest{
		EventID:    2,
		Name:       "Meera",
		Email:      "meera@example.com",
		Phone:      "9000000000",
		College:    "NIT",
		Department: "ece",
	}

	reg, err := svc.Submit(context.Background(), req, "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if reg.FeeDue != 0 {
		t.Errorf("fee due = %d, want 0 for a free event", reg.FeeDue)
	}
}

func TestPaymentConfirmationUsesSubmissionSnapshot(t *testing.T) {
	events := map[uint]*event.Event{1: hackDay()}
	svc, _, _ := newTestService(events)

	reg, err := svc.Submit(context.Background(), validTeamRequest(), "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// fee edited after submission; the recorded amount must not move
	events[1].Fee = 250

	updated, err := svc.SetPaymentStatus(context.Background(), reg.ID, PaymentStatusRequest{PaymentStatus: "paid"}, 7, "")
	if err != nil {
		t.Fatalf("SetPaymentStatus failed: %v", err)
	}
	if updated.FeePaid != 100 {
		t.Errorf("fee paid = %d, want 100 (snapshot at submission)", updated.FeePaid)
	}
	if updated.PaymentStatus != StatusPaid {
		t.Errorf("status = %q, want paid", updated.PaymentStatus)
	}
}

func TestPaymentExplicitAmountOverride(t *testing.T) {
	svc, _, _ := newTestService(map[uint]*event.Event{1: hackDay()})

	reg, _ := svc.Submit(context.Background(), validTeamRequest(), "")

	amount := 80
	updated, err := svc.SetPaymentStatus(context.Background(), reg.ID, PaymentStatusRequest{PaymentStatus: "paid", Amount: &amount}, 7, "")
	if err != nil {
		t.Fatalf("SetPaymentStatus failed: %v", err)
	}
	if updated.FeePaid != 80 {
		t.Errorf("fee paid = %d, want explicit 80", updated.FeePaid)
	}
}

func TestPaymentTransitionsBothWays(t *testing.T) {
	svc, _, _ := newTestService(map[uint]*event.Event{1: hackDay()})
	reg, _ := svc.Submit(context.Background(), validTeamRequest(), "")

	if _, err := svc.SetPaymentStatus(context.Background(), reg.ID, PaymentStatusRequest{PaymentStatus: "paid"}, 7, ""); err != nil {
		t.Fatalf("pending -> paid failed: %v", err)
	}
	failed, err := svc.SetPaymentStatus(context.Background(), reg.ID, PaymentStatusRequest{PaymentStatus: "failed"}, 7, "")
	if err != nil {
		t.Fatalf("paid -> failed failed: %v", err)
	}
	if failed.PaymentStatus != StatusFailed || failed.FeePaid != 0 {
		t.Errorf("after failing: status=%q fee_paid=%d, want failed/0", failed.PaymentStatus, failed.FeePaid)
	}
}

func TestPaymentRejectsInvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(map[uint]*event.Event{1: hackDay()})
	reg, _ := svc.Submit(context.Background(), validTeamRequest(), "")

	if _, err := svc.SetPaymentStatus(context.Background(), reg.ID, PaymentStatusRequest{PaymentStatus: "pending"}, 7, ""); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("pending is not settable: err = %v, want ErrInvalidStatus", err)
	}
}

func TestDeleteRemovesRegistration(t *testing.T) {
	svc, repo, _ := newTestService(map[uint]*event.Event{1: hackDay()})
	reg, _ := svc.Submit(context.Background(), validTeamRequest(), "")

	if err := svc.Delete(context.Background(), reg.ID, 7, ""); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), reg.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("lookup after delete: err = %v, want record not found", err)
	}
	if err := svc.Delete(context.Background(), reg.ID, 7, ""); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("double delete: err = %v, want record not found", err)
	}
}
