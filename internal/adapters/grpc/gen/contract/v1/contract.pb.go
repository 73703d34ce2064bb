// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: contract/v1/contract.proto

package contractpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PersonSummary struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Id            string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FirstName     string                  `protobuf:"bytes,2,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                  `protobuf:"bytes,3,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	ManagerId     *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PersonSummary) Reset() {
	*x = PersonSummary{}
	mi := &file_contract_v1_contract_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PersonSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PersonSummary) ProtoMessage() {}

func (x *PersonSummary) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PersonSummary.ProtoReflect.Descriptor instead.
func (*PersonSummary) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{0}
}

func (x *PersonSummary) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PersonSummary) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *PersonSummary) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *PersonSummary) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

type Contract struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Id       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PersonId string                 `protobuf:"bytes,2,opt,name=person_id,json=personId,proto3" json:"person_id,omitempty"`
	JobTitle string                 `protobuf:"bytes,3,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	// YYYY-MM-DD
	ContractStart string `protobuf:"bytes,4,opt,name=contract_start,json=contractStart,proto3" json:"contract_start,omitempty"`
	// YYYY-MM-DD、未設定は無期限
	ContractEnd     *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=contract_end,json=contractEnd,proto3" json:"contract_end,omitempty"`
	HourlyRate      float64                 `protobuf:"fixed64,6,opt,name=hourly_rate,json=hourlyRate,proto3" json:"hourly_rate,omitempty"`
	ContractedHours float64                 `protobuf:"fixed64,7,opt,name=contracted_hours,json=contractedHours,proto3" json:"contracted_hours,omitempty"`
	CreatedAt       *timestamppb.Timestamp  `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp  `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Person          *PersonSummary          `protobuf:"bytes,10,opt,name=person,proto3" json:"person,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_contract_v1_contract_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{1}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetPersonId() string {
	if x != nil {
		return x.PersonId
	}
	return ""
}

func (x *Contract) GetJobTitle() string {
	if x != nil {
		return x.JobTitle
	}
	return ""
}

func (x *Contract) GetContractStart() string {
	if x != nil {
		return x.ContractStart
	}
	return ""
}

func (x *Contract) GetContractEnd() *wrapperspb.StringValue {
	if x != nil {
		return x.ContractEnd
	}
	return nil
}

func (x *Contract) GetHourlyRate() float64 {
	if x != nil {
		return x.HourlyRate
	}
	return 0
}

func (x *Contract) GetContractedHours() float64 {
	if x != nil {
		return x.ContractedHours
	}
	return 0
}

func (x *Contract) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Contract) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Contract) GetPerson() *PersonSummary {
	if x != nil {
		return x.Person
	}
	return nil
}

type CreateContractRequest struct {
	state           protoimpl.MessageState  `protogen:"open.v1"`
	PersonId        string                  `protobuf:"bytes,1,opt,name=person_id,json=personId,proto3" json:"person_id,omitempty"`
	JobTitle        string                  `protobuf:"bytes,2,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	ContractStart   string                  `protobuf:"bytes,3,opt,name=contract_start,json=contractStart,proto3" json:"contract_start,omitempty"`
	ContractEnd     *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=contract_end,json=contractEnd,proto3" json:"contract_end,omitempty"`
	HourlyRate      float64                 `protobuf:"fixed64,5,opt,name=hourly_rate,json=hourlyRate,proto3" json:"hourly_rate,omitempty"`
	ContractedHours float64                 `protobuf:"fixed64,6,opt,name=contracted_hours,json=contractedHours,proto3" json:"contracted_hours,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateContractRequest) Reset() {
	*x = CreateContractRequest{}
	mi := &file_contract_v1_contract_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContractRequest) ProtoMessage() {}

func (x *CreateContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContractRequest.ProtoReflect.Descriptor instead.
func (*CreateContractRequest) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{2}
}

func (x *CreateContractRequest) GetPersonId() string {
	if x != nil {
		return x.PersonId
	}
	return ""
}

func (x *CreateContractRequest) GetJobTitle() string {
	if x != nil {
		return x.JobTitle
	}
	return ""
}

func (x *CreateContractRequest) GetContractStart() string {
	if x != nil {
		return x.ContractStart
	}
	return ""
}

func (x *CreateContractRequest) GetContractEnd() *wrapperspb.StringValue {
	if x != nil {
		return x.ContractEnd
	}
	return nil
}

func (x *CreateContractRequest) GetHourlyRate() float64 {
	if x != nil {
		return x.HourlyRate
	}
	return 0
}

func (x *CreateContractRequest) GetContractedHours() float64 {
	if x != nil {
		return x.ContractedHours
	}
	return 0
}

type CreateContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateContractResponse) Reset() {
	*x = CreateContractResponse{}
	mi := &file_contract_v1_contract_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContractResponse) ProtoMessage() {}

func (x *CreateContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContractResponse.ProtoReflect.Descriptor instead.
func (*CreateContractResponse) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{3}
}

func (x *CreateContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type UpdateContractRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Id            string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PersonId      *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=person_id,json=personId,proto3" json:"person_id,omitempty"`
	JobTitle      *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	ContractStart *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=contract_start,json=contractStart,proto3" json:"contract_start,omitempty"`
	// 空文字は無期限への変更を意味します。
	ContractEnd     *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=contract_end,json=contractEnd,proto3" json:"contract_end,omitempty"`
	HourlyRate      *wrapperspb.DoubleValue `protobuf:"bytes,6,opt,name=hourly_rate,json=hourlyRate,proto3" json:"hourly_rate,omitempty"`
	ContractedHours *wrapperspb.DoubleValue `protobuf:"bytes,7,opt,name=contracted_hours,json=contractedHours,proto3" json:"contracted_hours,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateContractRequest) Reset() {
	*x = UpdateContractRequest{}
	mi := &file_contract_v1_contract_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContractRequest) ProtoMessage() {}

func (x *UpdateContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContractRequest.ProtoReflect.Descriptor instead.
func (*UpdateContractRequest) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateContractRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateContractRequest) GetPersonId() *wrapperspb.StringValue {
	if x != nil {
		return x.PersonId
	}
	return nil
}

func (x *UpdateContractRequest) GetJobTitle() *wrapperspb.StringValue {
	if x != nil {
		return x.JobTitle
	}
	return nil
}

func (x *UpdateContractRequest) GetContractStart() *wrapperspb.StringValue {
	if x != nil {
		return x.ContractStart
	}
	return nil
}

func (x *UpdateContractRequest) GetContractEnd() *wrapperspb.StringValue {
	if x != nil {
		return x.ContractEnd
	}
	return nil
}

func (x *UpdateContractRequest) GetHourlyRate() *wrapperspb.DoubleValue {
	if x != nil {
		return x.HourlyRate
	}
	return nil
}

func (x *UpdateContractRequest) GetContractedHours() *wrapperspb.DoubleValue {
	if x != nil {
		return x.ContractedHours
	}
	return nil
}

type UpdateContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContractResponse) Reset() {
	*x = UpdateContractResponse{}
	mi := &file_contract_v1_contract_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContractResponse) ProtoMessage() {}

func (x *UpdateContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContractResponse.ProtoReflect.Descriptor instead.
func (*UpdateContractResponse) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type DeleteContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContractRequest) Reset() {
	*x = DeleteContractRequest{}
	mi := &file_contract_v1_contract_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContractRequest) ProtoMessage() {}

func (x *DeleteContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContractRequest.ProtoReflect.Descriptor instead.
func (*DeleteContractRequest) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteContractRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContractResponse) Reset() {
	*x = DeleteContractResponse{}
	mi := &file_contract_v1_contract_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContractResponse) ProtoMessage() {}

func (x *DeleteContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContractResponse.ProtoReflect.Descriptor instead.
func (*DeleteContractResponse) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{7}
}

type GetContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractRequest) Reset() {
	*x = GetContractRequest{}
	mi := &file_contract_v1_contract_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractRequest) ProtoMessage() {}

func (x *GetContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractRequest.ProtoReflect.Descriptor instead.
func (*GetContractRequest) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{8}
}

func (x *GetContractRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractResponse) Reset() {
	*x = GetContractResponse{}
	mi := &file_contract_v1_contract_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractResponse) ProtoMessage() {}

func (x *GetContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractResponse.ProtoReflect.Descriptor instead.
func (*GetContractResponse) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{9}
}

func (x *GetContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type ListContractsRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	PersonId      *wrapperspb.StringValue `protobuf:"bytes,1,opt,name=person_id,json=personId,proto3" json:"person_id,omitempty"`
	PageSize      int32                   `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                  `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsRequest) Reset() {
	*x = ListContractsRequest{}
	mi := &file_contract_v1_contract_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsRequest) ProtoMessage() {}

func (x *ListContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsRequest.ProtoReflect.Descriptor instead.
func (*ListContractsRequest) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{10}
}

func (x *ListContractsRequest) GetPersonId() *wrapperspb.StringValue {
	if x != nil {
		return x.PersonId
	}
	return nil
}

func (x *ListContractsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListContractsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contracts     []*Contract            `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsResponse) Reset() {
	*x = ListContractsResponse{}
	mi := &file_contract_v1_contract_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsResponse) ProtoMessage() {}

func (x *ListContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contract_v1_contract_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsResponse.ProtoReflect.Descriptor instead.
func (*ListContractsResponse) Descriptor() ([]byte, []int) {
	return file_contract_v1_contract_proto_rawDescGZIP(), []int{11}
}

func (x *ListContractsResponse) GetContracts() []*Contract {
	if x != nil {
		return x.Contracts
	}
	return nil
}

func (x *ListContractsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

var File_contract_v1_contract_proto protoreflect.FileDescriptor

const file_contract_v1_contract_proto_rawDesc = "" +
	"\n" +
	"\x1acontract/v1/contract.proto\x12\vcontract.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\x98\x01\n" +
	"\rPersonSummary\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"first_name\x18\x02 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x03 \x01(\tR\blastName\x12;\n" +
	"\n" +
	"manager_id\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\"\xb2\x03\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tperson_id\x18\x02 \x01(\tR\bpersonId\x12\x1b\n" +
	"\tjob_title\x18\x03 \x01(\tR\bjobTitle\x12%\n" +
	"\x0econtract_start\x18\x04 \x01(\tR\rcontractStart\x12?\n" +
	"\fcontract_end\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\vcontractEnd\x12\x1f\n" +
	"\vhourly_rate\x18\x06 \x01(\x01R\n" +
	"hourlyRate\x12)\n" +
	"\x10contracted_hours\x18\a \x01(\x01R\x0fcontractedHours\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x122\n" +
	"\x06person\x18\n" +
	" \x01(\v2\x1a.contract.v1.PersonSummaryR\x06person\"\x85\x02\n" +
	"\x15CreateContractRequest\x12\x1b\n" +
	"\tperson_id\x18\x01 \x01(\tR\bpersonId\x12\x1b\n" +
	"\tjob_title\x18\x02 \x01(\tR\bjobTitle\x12%\n" +
	"\x0econtract_start\x18\x03 \x01(\tR\rcontractStart\x12?\n" +
	"\fcontract_end\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\vcontractEnd\x12\x1f\n" +
	"\vhourly_rate\x18\x05 \x01(\x01R\n" +
	"hourlyRate\x12)\n" +
	"\x10contracted_hours\x18\x06 \x01(\x01R\x0fcontractedHours\"K\n" +
	"\x16CreateContractResponse\x121\n" +
	"\bcontract\x18\x01 \x01(\v2\x15.contract.v1.ContractR\bcontract\"\xab\x03\n" +
	"\x15UpdateContractRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x129\n" +
	"\tperson_id\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\bpersonId\x129\n" +
	"\tjob_title\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\bjobTitle\x12C\n" +
	"\x0econtract_start\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\rcontractStart\x12?\n" +
	"\fcontract_end\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\vcontractEnd\x12=\n" +
	"\vhourly_rate\x18\x06 \x01(\v2\x1c.google.protobuf.DoubleValueR\n" +
	"hourlyRate\x12G\n" +
	"\x10contracted_hours\x18\a \x01(\v2\x1c.google.protobuf.DoubleValueR\x0fcontractedHours\"K\n" +
	"\x16UpdateContractResponse\x121\n" +
	"\bcontract\x18\x01 \x01(\v2\x15.contract.v1.ContractR\bcontract\"'\n" +
	"\x15DeleteContractRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteContractResponse\"$\n" +
	"\x12GetContractRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"H\n" +
	"\x13GetContractResponse\x121\n" +
	"\bcontract\x18\x01 \x01(\v2\x15.contract.v1.ContractR\bcontract\"\x8d\x01\n" +
	"\x14ListContractsRequest\x129\n" +
	"\tperson_id\x18\x01 \x01(\v2\x1c.google.protobuf.StringValueR\bpersonId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x03 \x01(\tR\tpageToken\"t\n" +
	"\x15ListContractsResponse\x123\n" +
	"\tcontracts\x18\x01 \x03(\v2\x15.contract.v1.ContractR\tcontracts\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken2\xcc\x03\n" +
	"\x0fContractService\x12Y\n" +
	"\x0eCreateContract\x12\".contract.v1.CreateContractRequest\x1a#.contract.v1.CreateContractResponse\x12Y\n" +
	"\x0eUpdateContract\x12\".contract.v1.UpdateContractRequest\x1a#.contract.v1.UpdateContractResponse\x12Y\n" +
	"\x0eDeleteContract\x12\".contract.v1.DeleteContractRequest\x1a#.contract.v1.DeleteContractResponse\x12P\n" +
	"\vGetContract\x12\x1f.contract.v1.GetContractRequest\x1a .contract.v1.GetContractResponse\x12V\n" +
	"\rListContracts\x12!.contract.v1.ListContractsRequest\x1a\".contract.v1.ListContractsResponseBWZUgithub.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/contract/v1;contractpbb\x06proto3"

var (
	file_contract_v1_contract_proto_rawDescOnce sync.Once
	file_contract_v1_contract_proto_rawDescData []byte
)

func file_contract_v1_contract_proto_rawDescGZIP() []byte {
	file_contract_v1_contract_proto_rawDescOnce.Do(func() {
		file_contract_v1_contract_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contract_v1_contract_proto_rawDesc), len(file_contract_v1_contract_proto_rawDesc)))
	})
	return file_contract_v1_contract_proto_rawDescData
}

var file_contract_v1_contract_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_contract_v1_contract_proto_goTypes = []any{
	(*PersonSummary)(nil),          // 0: contract.v1.PersonSummary
	(*Contract)(nil),               // 1: contract.v1.Contract
	(*CreateContractRequest)(nil),  // 2: contract.v1.CreateContractRequest
	(*CreateContractResponse)(nil), // 3: contract.v1.CreateContractResponse
	(*UpdateContractRequest)(nil),  // 4: contract.v1.UpdateContractRequest
	(*UpdateContractResponse)(nil), // 5: contract.v1.UpdateContractResponse
	(*DeleteContractRequest)(nil),  // 6: contract.v1.DeleteContractRequest
	(*DeleteContractResponse)(nil), // 7: contract.v1.DeleteContractResponse
	(*GetContractRequest)(nil),     // 8: contract.v1.GetContractRequest
	(*GetContractResponse)(nil),    // 9: contract.v1.GetContractResponse
	(*ListContractsRequest)(nil),   // 10: contract.v1.ListContractsRequest
	(*ListContractsResponse)(nil),  // 11: contract.v1.ListContractsResponse
	(*wrapperspb.StringValue)(nil), // 12: google.protobuf.StringValue
	(*timestamppb.Timestamp)(nil),  // 13: google.protobuf.Timestamp
	(*wrapperspb.DoubleValue)(nil), // 14: google.protobuf.DoubleValue
}
var file_contract_v1_contract_proto_depIdxs = []int32{
	12, // 0: contract.v1.PersonSummary.manager_id:type_name -> google.protobuf.StringValue
	12, // 1: contract.v1.Contract.contract_end:type_name -> google.protobuf.StringValue
	13, // 2: contract.v1.Contract.created_at:type_name -> google.protobuf.Timestamp
	13, // 3: contract.v1.Contract.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 4: contract.v1.Contract.person:type_name -> contract.v1.PersonSummary
	12, // 5: contract.v1.CreateContractRequest.contract_end:type_name -> google.protobuf.StringValue
	1,  // 6: contract.v1.CreateContractResponse.contract:type_name -> contract.v1.Contract
	12, // 7: contract.v1.UpdateContractRequest.person_id:type_name -> google.protobuf.StringValue
	12, // 8: contract.v1.UpdateContractRequest.job_title:type_name -> google.protobuf.StringValue
	12, // 9: contract.v1.UpdateContractRequest.contract_start:type_name -> google.protobuf.StringValue
	12, // 10: contract.v1.UpdateContractRequest.contract_end:type_name -> google.protobuf.StringValue
	14, // 11: contract.v1.UpdateContractRequest.hourly_rate:type_name -> google.protobuf.DoubleValue
	14, // 12: contract.v1.UpdateContractRequest.contracted_hours:type_name -> google.protobuf.DoubleValue
	1,  // 13: contract.v1.UpdateContractResponse.contract:type_name -> contract.v1.Contract
	1,  // 14: contract.v1.GetContractResponse.contract:type_name -> contract.v1.Contract
	12, // 15: contract.v1.ListContractsRequest.person_id:type_name -> google.protobuf.StringValue
	1,  // 16: contract.v1.ListContractsResponse.contracts:type_name -> contract.v1.Contract
	2,  // 17: contract.v1.ContractService.CreateContract:input_type -> contract.v1.CreateContractRequest
	4,  // 18: contract.v1.ContractService.UpdateContract:input_type -> contract.v1.UpdateContractRequest
	6,  // 19: contract.v1.ContractService.DeleteContract:input_type -> contract.v1.DeleteContractRequest
	8,  // 20: contract.v1.ContractService.GetContract:input_type -> contract.v1.GetContractRequest
	10, // 21: contract.v1.ContractService.ListContracts:input_type -> contract.v1.ListContractsRequest
	3,  // 22: contract.v1.ContractService.CreateContract:output_type -> contract.v1.CreateContractResponse
	5,  // 23: contract.v1.ContractService.UpdateContract:output_type -> contract.v1.UpdateContractResponse
	7,  // 24: contract.v1.ContractService.DeleteContract:output_type -> contract.v1.DeleteContractResponse
	9,  // 25: contract.v1.ContractService.GetContract:output_type -> contract.v1.GetContractResponse
	11, // 26: contract.v1.ContractService.ListContracts:output_type -> contract.v1.ListContractsResponse
	22, // [22:27] is the sub-list for method output_type
	17, // [17:22] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_contract_v1_contract_proto_init() }
func file_contract_v1_contract_proto_init() {
	if File_contract_v1_contract_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contract_v1_contract_proto_rawDesc), len(file_contract_v1_contract_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_contract_v1_contract_proto_goTypes,
		DependencyIndexes: file_contract_v1_contract_proto_depIdxs,
		MessageInfos:      file_contract_v1_contract_proto_msgTypes,
	}.Build()
	File_contract_v1_contract_proto = out.File
	file_contract_v1_contract_proto_goTypes = nil
	file_contract_v1_contract_proto_depIdxs = nil
}
