package commands

import (
	"errors"

	"secureorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrProductIDIsRequired  = errors.New("product id is required")
	ErrPremiumIsInvalid     = errors.New("total monthly premium amount must be greater than 0")
)

// CreateOrderCommand represents a request to register a new insurance
// purchase order. Encapsulates the customer's product choice, premium,
// insured capital, coverages, and assistance services.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("customer-1", "product-1", "LIFE", "MOBILE",
//	    "CREDIT_CARD", premium, &insuredAmount, coverages, assistances)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s received and queued for underwriting", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID    string
	productID     string
	category      string
	salesChannel  string
	paymentMethod string

	totalMonthlyPremiumAmount decimal.Decimal
	insuredAmount             *decimal.Decimal
	coverages                 map[string]decimal.Decimal
	assistances               []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates that customer and product ids are not empty and the premium is
// positive. The insured amount may be nil; underwriting rejects such orders
// later instead of failing intake.
func NewCreateOrderCommand(
	customerID string,
	productID string,
	category string,
	salesChannel string,
	paymentMethod string,
	totalMonthlyPremiumAmount decimal.Decimal,
	insuredAmount *decimal.Decimal,
	coverages map[string]decimal.Decimal,
	assistances []string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		category:      category,
		salesChannel:  salesChannel,
		paymentMethod: paymentMethod,
		insuredAmount: insuredAmount,
		coverages:     coverages,
		assistances:   assistances,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setProductID(productID),
		orderCommand.setTotalMonthlyPremiumAmount(totalMonthlyPremiumAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the purchasing customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// ProductID returns the identifier of the insurance product.
func (c CreateOrderCommand) ProductID() string {
	return c.productID
}

// Category returns the free-text insurance category.
func (c CreateOrderCommand) Category() string {
	return c.category
}

// SalesChannel returns the channel the order was sold through.
func (c CreateOrderCommand) SalesChannel() string {
	return c.salesChannel
}

// PaymentMethod returns the customer's chosen payment method.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// TotalMonthlyPremiumAmount returns the monthly premium.
func (c CreateOrderCommand) TotalMonthlyPremiumAmount() decimal.Decimal {
	return c.totalMonthlyPremiumAmount
}

// InsuredAmount returns the capital amount to be insured, or nil.
func (c CreateOrderCommand) InsuredAmount() *decimal.Decimal {
	return c.insuredAmount
}

// Coverages returns the mapping of coverage name to sub-limit amount.
func (c CreateOrderCommand) Coverages() map[string]decimal.Decimal {
	return c.coverages
}

// Assistances returns the names of the contracted assistance services.
func (c CreateOrderCommand) Assistances() []string {
	return c.assistances
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setTotalMonthlyPremiumAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrPremiumIsInvalid
	}

	c.totalMonthlyPremiumAmount = amount
	return nil
}
