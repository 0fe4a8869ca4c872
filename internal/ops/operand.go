package ops

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/agbru/arithmos/internal/bigint"
	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/rational"
)

func argField(i int) string {
	return fmt.Sprintf("operand %d", i+1)
}

func invalid(i int, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return apperrors.ValidationError{Field: argField(i), Message: err.Error()}
}

func parseInt(args []string, i int) (*bigint.Int, error) {
	x, err := bigint.Parse(args[i])
	if err != nil {
		return nil, invalid(i, err)
	}
	return x, nil
}

func parseInts(args []string) ([]*bigint.Int, error) {
	out := make([]*bigint.Int, len(args))
	for i := range args {
		x, err := parseInt(args, i)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func parseInt64(args []string, i int) (int64, error) {
	v, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil {
		return 0, invalid(i, err)
	}
	return v, nil
}

func parseUint64(args []string, i int) (uint64, error) {
	v, err := strconv.ParseUint(args[i], 10, 64)
	if err != nil {
		return 0, invalid(i, err)
	}
	return v, nil
}

func parseRat(args []string, i int) (rational.Rat, error) {
	r, err := rational.Parse(args[i])
	if err != nil {
		return rational.NaN, invalid(i, err)
	}
	return r, nil
}
