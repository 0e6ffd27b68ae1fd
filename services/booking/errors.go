package booking

import "barbershop/utils"

// storeFailure classifies repository failures that are not already AppErrors.
func storeFailure(op string, err error) error {
	if utils.KindOf(err) != "" {
		return err
	}
	return utils.StoreError(op, err)
}
