package domain

// Cart-level rule violations.
var (
	ErrDuplicateProduct         = &Error{Code: EDUPLICATEPRODUCT, Message: "Product already in cart"}
	ErrItemNotFound             = &Error{Code: EITEMNOTFOUND, Message: "Item not found in cart"}
	ErrAlreadyCheckedOut        = &Error{Code: EALREADYCHECKEDOUT, Message: "Cart has already been checked out"}
	ErrMaxItemsExceeded         = &Error{Code: EMAXITEMS, Message: "Cart cannot hold more than 50 items"}
	ErrMaxTotalQuantityExceeded = &Error{Code: EMAXTOTALQUANTITY, Message: "Cart cannot hold more than 999 units in total"}
	ErrMaxTotalPriceExceeded    = &Error{Code: EMAXTOTALPRICE, Message: "Cart total cannot exceed 1,000,000"}
	ErrEmptyCart                = &Error{Code: EEMPTYCART, Message: "Cannot check out an empty cart"}
)

// Item-level rule violations.
var (
	ErrInvalidProductID          = &Error{Code: EINVALIDPRODUCTID, Message: "Product ID must be greater than 0"}
	ErrInvalidQuantity           = &Error{Code: EINVALIDQUANTITY, Message: "Quantity must be at least 1"}
	ErrMaxItemQuantityExceeded   = &Error{Code: EMAXITEMQUANTITY, Message: "Item quantity cannot exceed 100"}
	ErrInvalidUnitPrice          = &Error{Code: EINVALIDUNITPRICE, Message: "Unit price must be at least 0.01"}
	ErrMaxUnitPriceExceeded      = &Error{Code: EMAXUNITPRICE, Message: "Unit price cannot exceed 999999.99"}
	ErrInvalidUnitPricePrecision = &Error{Code: EUNITPRICEPRECISION, Message: "Unit price cannot have more than 2 decimal places"}
	ErrInvalidDiscountPercentage = &Error{Code: EINVALIDDISCOUNT, Message: "Discount percentage must be between 0 and 100"}
	ErrInvalidDiscountPrecision  = &Error{Code: EDISCOUNTPRECISION, Message: "Discount percentage cannot have more than 2 decimal places"}
	ErrDiscountCannotBeReduced   = &Error{Code: EDISCOUNTREDUCED, Message: "Discount percentage cannot be reduced"}
	ErrInsufficientStock         = &Error{Code: EINSUFFICIENTSTOCK, Message: "Insufficient stock for one or more items"}
)
