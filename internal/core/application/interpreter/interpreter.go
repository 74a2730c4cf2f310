// Package interpreter turns free-form utterances into order operations.
// It is the seam between the conversational surface and the use-case layer:
// classify the intent, extract the fields the intent needs, run the matching
// command or query, and phrase the outcome as a reply.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"orderchat/internal/core/application/conversation"
	"orderchat/internal/core/application/usecases/commands"
	"orderchat/internal/core/application/usecases/queries"
	"orderchat/internal/core/domain/model/order"
	"orderchat/internal/core/domain/services"
	"orderchat/internal/core/ports"
	"orderchat/internal/pkg/errs"
)

// Temperature for the chat fallback. Higher than extraction: here the model
// is conversing, not filling a form.
const chatTemperature = 0.7

const (
	apologyReply     = "Sorry, I can't help with that right now."
	pickupTimeFormat = "Mon, 2 Jan at 3:04 PM"
)

// DetailsExtractor produces order details from a creation utterance.
type DetailsExtractor interface {
	OrderDetails(ctx context.Context, text string) order.Details
}

// Use-case seams. The interpreter depends on behavior, not on the concrete
// handlers, so it can be exercised without a database.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateAddressHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateAddressCommand) (*order.Order, error)
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	TrackOrderHandler interface {
		Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.OrderResponse, error)
	}
	NextPickupHandler interface {
		Handle(ctx context.Context, query queries.NextPickupQuery) (queries.OrderResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}
)

// Config wires the interpreter's collaborators. Chat may be nil: the free-text
// fallback then answers with a fixed apology instead of a model reply.
type Config struct {
	Classifier    *services.IntentClassifier
	Extractor     DetailsExtractor
	CreateOrder   CreateOrderHandler
	UpdateAddress UpdateAddressHandler
	UpdateOrder   UpdateOrderHandler
	CancelOrder   CancelOrderHandler
	DeleteOrder   DeleteOrderHandler
	TrackOrder    TrackOrderHandler
	NextPickup    NextPickupHandler
	ListOrders    ListOrdersHandler
	Conversations *conversation.Store
	Chat          ports.ChatClient
	Logger        *slog.Logger
	Now           func() time.Time
}

// Interpreter is the command interpreter: one Submit call per utterance.
type Interpreter struct {
	cfg Config
}

// New creates an interpreter from its wired collaborators.
func New(cfg Config) *Interpreter {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Interpreter{cfg: cfg}
}

// Submit interprets one utterance for one user and returns the outcome.
// Validation gaps and unknown ids come back as results with clarification or
// not-found actions; only unexpected failures return an error, which the
// transport maps to an internal error response.
//
// Every handled branch appends the utterance and the reply to the user's
// conversation context before returning.
func (i *Interpreter) Submit(ctx context.Context, text, userID string) (Result, error) {
	classification := i.cfg.Classifier.Classify(text)

	// The general branch manages context itself: the utterance must be in the
	// window forwarded to the model.
	if classification.Intent == services.IntentGeneral {
		return i.handleGeneral(ctx, text, userID)
	}

	var result Result
	var err error

	switch classification.Intent {
	case services.IntentCreateOrder:
		result, err = i.handleCreate(ctx, text, userID)
	case services.IntentTrackOrder:
		result, err = i.handleTrack(ctx, classification.TrackingID)
	case services.IntentNextPickup:
		result, err = i.handleNextPickup(ctx)
	case services.IntentListOrders:
		result, err = i.handleList(ctx)
	case services.IntentCancelOrder:
		result, err = i.handleCancel(ctx, text)
	case services.IntentDeleteOrder:
		result, err = i.handleDelete(ctx, text)
	case services.IntentUpdateAddress:
		result, err = i.handleUpdateAddress(ctx, text)
	case services.IntentUpdateOrder:
		result, err = i.handleUpdate(ctx, text)
	default:
		return Result{}, fmt.Errorf("unhandled intent %q", classification.Intent)
	}

	if err != nil {
		return Result{}, err
	}

	i.remember(userID, text, result.Reply)
	return result, nil
}

func (i *Interpreter) handleCreate(ctx context.Context, text, userID string) (Result, error) {
	details := i.cfg.Extractor.OrderDetails(ctx, text)
	details.Metadata = order.Metadata{CreatedBy: userID, Channel: "chat"}

	cmd, err := commands.NewCreateOrderCommand(details)
	if err != nil {
		return Result{}, err
	}

	created, err := i.cfg.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return Result{}, err
	}

	trackingID := created.TrackingID().String()
	return Result{
		Reply:      fmt.Sprintf("Your order has been created. Tracking ID: %s", trackingID),
		Action:     ActionCreatedOrder,
		Order:      viewFromOrder(created),
		TrackingID: trackingID,
	}, nil
}

func (i *Interpreter) handleTrack(ctx context.Context, token string) (Result, error) {
	query, err := queries.NewTrackOrderQuery(token)
	if err != nil {
		return Result{}, err
	}

	resp, err := i.cfg.TrackOrder.Handle(ctx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Result{
			Reply:  fmt.Sprintf("Couldn't find order %s.", strings.ToUpper(token)),
			Action: ActionOrderNotFound,
		}, nil
	}
	if err != nil {
		return Result{}, err
	}

	view := viewFromResponse(resp)
	return Result{
		Reply:      trackSummary(view),
		Action:     ActionTrackOrder,
		Order:      view,
		TrackingID: view.TrackingID,
	}, nil
}

func (i *Interpreter) handleNextPickup(ctx context.Context) (Result, error) {
	resp, err := i.cfg.NextPickup.Handle(ctx, queries.NewNextPickupQuery())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Result{
			Reply:  "There are no upcoming pickups scheduled.",
			Action: ActionNoPickups,
		}, nil
	}
	if err != nil {
		return Result{}, err
	}

	view := viewFromResponse(resp)
	return Result{
		Reply: fmt.Sprintf("Next pickup: %s on %s (order %s).",
			view.Item, view.PickupTime.Format(pickupTimeFormat), view.TrackingID),
		Action:     ActionNextPickup,
		Order:      view,
		TrackingID: view.TrackingID,
	}, nil
}

func (i *Interpreter) handleList(ctx context.Context) (Result, error) {
	responses, err := i.cfg.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return Result{}, err
	}

	if len(responses) == 0 {
		return Result{
			Reply:  "You don't have any orders yet.",
			Action: ActionListOrders,
			Orders: []OrderView{},
		}, nil
	}

	views := make([]OrderView, 0, len(responses))
	lines := make([]string, 0, len(responses)+1)
	lines = append(lines, "Your recent orders:")
	for n, resp := range responses {
		view := viewFromResponse(resp)
		views = append(views, *view)
		lines = append(lines, fmt.Sprintf("%d. %s — %s (%s)", n+1, view.TrackingID, view.Item, statusLabel(view.Status)))
	}

	return Result{
		Reply:  strings.Join(lines, "\n"),
		Action: ActionListOrders,
		Orders: views,
	}, nil
}

func (i *Interpreter) handleCancel(ctx context.Context, text string) (Result, error) {
	token, ok := services.ExtractCancelID(text)
	if !ok {
		return Result{
			Reply:  "Which order would you like to cancel? Please provide the order ID.",
			Action: ActionAskForOrderID,
		}, nil
	}

	cmd, err := commands.NewCancelOrderCommand(token)
	if err != nil {
		return Result{}, err
	}

	cancelled, err := i.cfg.CancelOrder.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		// Still a cancel outcome, just with nothing to cancel.
		return Result{
			Reply:  fmt.Sprintf("Couldn't find order %s.", strings.ToUpper(token)),
			Action: ActionCancelOrder,
		}, nil
	}
	if err != nil {
		return Result{}, err
	}

	trackingID := cancelled.TrackingID().String()
	return Result{
		Reply:      fmt.Sprintf("Order %s has been cancelled.", trackingID),
		Action:     ActionCancelOrder,
		Order:      viewFromOrder(cancelled),
		TrackingID: trackingID,
	}, nil
}

func (i *Interpreter) handleDelete(ctx context.Context, text string) (Result, error) {
	trackingID, ok := services.ExtractTrackingID(text)
	if !ok {
		return Result{
			Reply:  "Which order would you like to delete? Please provide the order ID.",
			Action: ActionAskForOrderID,
		}, nil
	}

	cmd, err := commands.NewDeleteOrderCommand(trackingID)
	if err != nil {
		return Result{}, err
	}

	err = i.cfg.DeleteOrder.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Result{
			Reply:  fmt.Sprintf("Couldn't find order %s.", trackingID),
			Action: ActionOrderNotFound,
		}, nil
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Reply:      fmt.Sprintf("Order %s has been deleted.", trackingID),
		Action:     ActionDeleteOrder,
		TrackingID: trackingID.String(),
	}, nil
}

func (i *Interpreter) handleUpdateAddress(ctx context.Context, text string) (Result, error) {
	trackingID, remainder, ok := services.ExtractTrackingIDWithRemainder(text)
	if !ok {
		return Result{
			Reply:  "Which order's address should I update? Please provide the order ID.",
			Action: ActionAskForOrderID,
		}, nil
	}

	if remainder == "" {
		return Result{
			Reply:  "What's the new address?",
			Action: ActionAskForAddress,
		}, nil
	}

	cmd, err := commands.NewUpdateAddressCommand(trackingID, remainder)
	if err != nil {
		return Result{}, err
	}

	updated, err := i.cfg.UpdateAddress.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Result{
			Reply:  fmt.Sprintf("Couldn't find order %s.", trackingID),
			Action: ActionOrderNotFound,
		}, nil
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Reply:      fmt.Sprintf("Address for order %s updated to %s.", trackingID, updated.Address()),
		Action:     ActionUpdateAddress,
		Order:      viewFromOrder(updated),
		TrackingID: trackingID.String(),
	}, nil
}

func (i *Interpreter) handleUpdate(ctx context.Context, text string) (Result, error) {
	trackingID, ok := services.ExtractTrackingID(text)
	if !ok {
		return Result{
			Reply:  "Which order would you like to update? Please provide the order ID.",
			Action: ActionAskForOrderID,
		}, nil
	}

	changes := detectChanges(text, i.cfg.Now())
	if changes.IsEmpty() {
		return Result{
			Reply: "What would you like to update? You can change the status, schedule a pickup, " +
				"assign someone, or add and remove items.",
			Action: ActionUpdateOrder,
		}, nil
	}

	cmd, err := commands.NewUpdateOrderCommand(trackingID, changes)
	if err != nil {
		return Result{}, err
	}

	updated, err := i.cfg.UpdateOrder.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Result{
			Reply:  fmt.Sprintf("Couldn't find order %s.", trackingID),
			Action: ActionOrderNotFound,
		}, nil
	}
	if errors.Is(err, order.ErrLastItemCannotBeRemoved) {
		return Result{
			Reply: "An order needs at least one item, so I can't remove everything. " +
				"Add a replacement item first, or cancel the order instead.",
			Action: ActionUpdateOrder,
		}, nil
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Reply:      updateSummary(updated, changes),
		Action:     ActionUpdateOrder,
		Order:      viewFromOrder(updated),
		TrackingID: trackingID.String(),
	}, nil
}

func (i *Interpreter) handleGeneral(ctx context.Context, text, userID string) (Result, error) {
	i.cfg.Conversations.Append(userID, conversation.Message{Role: conversation.RoleUser, Content: text})

	if i.cfg.Chat == nil {
		i.cfg.Conversations.Append(userID, conversation.Message{Role: conversation.RoleAssistant, Content: apologyReply})
		return Result{Reply: apologyReply, Action: ActionFallback}, nil
	}

	recent := i.cfg.Conversations.Recent(userID)
	messages := make([]ports.ChatMessage, 0, len(recent))
	for _, m := range recent {
		msg := ports.ChatMessage{Role: m.Role, Content: m.Content}
		if m.Role == conversation.RoleFunction {
			msg.Name = m.Name
		}
		messages = append(messages, msg)
	}

	reply, err := i.cfg.Chat.Complete(ctx, messages, chatTemperature)
	if err != nil {
		return Result{}, fmt.Errorf("chat fallback: %w", err)
	}

	i.cfg.Conversations.Append(userID, conversation.Message{Role: conversation.RoleAssistant, Content: reply})
	return Result{Reply: reply, Action: ActionLLMReply}, nil
}

// detectChanges runs every deterministic update extractor over the text.
// Pickup times only count when the text mentions pickup, so a bare "5pm"
// elsewhere in an utterance cannot schedule one.
func detectChanges(text string, now time.Time) commands.OrderChanges {
	var changes commands.OrderChanges

	if status, ok := services.ExtractStatus(text); ok {
		changes.Status = status
	}
	if services.ContainsPickupToken(text) {
		if pickup, ok := services.ExtractPickupTime(text, now); ok {
			changes.PickupTime = &pickup
		}
	}
	if assignee, ok := services.ExtractAssignee(text); ok {
		changes.Assignee = assignee
	}
	changes.AddedItems = services.ParseAddedItems(text)
	changes.RemovedItems = services.ParseRemovedItems(text)

	return changes
}

func (i *Interpreter) remember(userID, text, reply string) {
	i.cfg.Conversations.Append(userID,
		conversation.Message{Role: conversation.RoleUser, Content: text},
		conversation.Message{Role: conversation.RoleAssistant, Content: reply},
	)
}

// statusLabel renders a status for replies. Statuses outside the nominal set
// were written verbatim by a user or an external channel, so they are quoted
// to mark them as such.
func statusLabel(status string) string {
	if order.Status(status).IsKnown() {
		return status
	}
	return strconv.Quote(status)
}

func trackSummary(v *OrderView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s is %s: %s (qty %d)", v.TrackingID, statusLabel(v.Status), v.Item, v.Qty)
	if v.Address != "" {
		fmt.Fprintf(&b, ", deliver to %s", v.Address)
	}
	if v.CustomerName != "" {
		fmt.Fprintf(&b, " for %s", v.CustomerName)
	}
	b.WriteString(".")
	return b.String()
}

func updateSummary(o *order.Order, changes commands.OrderChanges) string {
	lines := []string{fmt.Sprintf("Order %s updated:", o.TrackingID())}
	if changes.Status != "" {
		lines = append(lines, fmt.Sprintf("- status: %s", statusLabel(o.Status().String())))
	}
	if changes.PickupTime != nil && o.PickupTime() != nil {
		lines = append(lines, fmt.Sprintf("- pickup: %s", o.PickupTime().Format(pickupTimeFormat)))
	}
	if changes.Assignee != "" {
		lines = append(lines, fmt.Sprintf("- assignee: %s", o.AssignedTo()))
	}
	if len(changes.AddedItems) > 0 || len(changes.RemovedItems) > 0 {
		lines = append(lines, fmt.Sprintf("- items: %s", o.Item()))
	}
	return strings.Join(lines, "\n")
}
