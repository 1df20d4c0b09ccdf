package mocks

//go:generate mockery --name SinkWriter --srcpkg github.com/streamcart-lab/streamcart/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
